package faker

import "golang.org/x/text/language"

// table holds the word stock for one locale. Phone formats use '#' as
// a digit placeholder.
type table struct {
	firstNames   []string
	lastNames    []string
	cities       []string
	streets      []string
	companies    []string
	words        []string
	emailDomains []string
	phoneFormat  string
	streetFormat string
}

var tableEN = table{
	firstNames: []string{
		"James", "Mary", "John", "Patricia", "Robert", "Jennifer",
		"Michael", "Linda", "David", "Elizabeth", "William", "Barbara",
		"Richard", "Susan", "Joseph", "Jessica", "Thomas", "Sarah",
		"Charles", "Karen", "Daniel", "Nancy", "Matthew", "Lisa",
	},
	lastNames: []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
		"Miller", "Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez",
		"Gonzalez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
		"Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
	},
	cities: []string{
		"Springfield", "Riverside", "Franklin", "Greenville", "Bristol",
		"Clinton", "Fairview", "Salem", "Madison", "Georgetown",
		"Arlington", "Ashland", "Burlington", "Manchester", "Oxford",
	},
	streets: []string{
		"Main Street", "Oak Avenue", "Maple Drive", "Cedar Lane",
		"Park Road", "Elm Street", "Washington Avenue", "Lake Drive",
		"Hill Road", "Church Street", "River Road", "Highland Avenue",
	},
	companies: []string{
		"Acme Corp", "Globex", "Initech", "Umbrella Industries",
		"Stark Labs", "Wayne Enterprises", "Pioneer Systems",
		"Summit Holdings", "Vertex Solutions", "Northwind Traders",
	},
	words: []string{
		"report", "window", "market", "signal", "harbor", "garden",
		"bridge", "castle", "meadow", "quarry", "valley", "anchor",
		"beacon", "canvas", "drift", "ember", "forge", "glacier",
		"horizon", "island", "lantern", "mirror", "orbit", "prism",
	},
	emailDomains: []string{"example.com", "example.org", "mail.test", "inbox.test"},
	phoneFormat:  "(###) ###-####",
	streetFormat: "### %s",
}

var tablePTBR = table{
	firstNames: []string{
		"Miguel", "Helena", "Arthur", "Alice", "Gael", "Laura",
		"Heitor", "Valentina", "Davi", "Sophia", "Bernardo", "Isabella",
		"Gabriel", "Manuela", "Pedro", "Julia", "Lucas", "Heloisa",
		"Matheus", "Luiza", "Rafael", "Maria", "Felipe", "Lorena",
	},
	lastNames: []string{
		"Silva", "Santos", "Oliveira", "Souza", "Rodrigues", "Ferreira",
		"Alves", "Pereira", "Lima", "Gomes", "Costa", "Ribeiro",
		"Martins", "Carvalho", "Almeida", "Lopes", "Soares", "Fernandes",
		"Vieira", "Barbosa", "Rocha", "Dias", "Nascimento", "Andrade",
	},
	cities: []string{
		"Sao Paulo", "Rio de Janeiro", "Belo Horizonte", "Curitiba",
		"Porto Alegre", "Salvador", "Fortaleza", "Recife", "Manaus",
		"Campinas", "Goiania", "Belem", "Florianopolis", "Vitoria",
	},
	streets: []string{
		"Rua das Flores", "Avenida Paulista", "Rua XV de Novembro",
		"Avenida Brasil", "Rua da Consolacao", "Rua Augusta",
		"Avenida Atlantica", "Rua do Comercio", "Travessa da Paz",
		"Alameda Santos", "Rua Sete de Setembro", "Avenida Central",
	},
	companies: []string{
		"Mercado Aurora", "Grupo Horizonte", "Industrias Vale Verde",
		"Comercial Estrela", "Tecnologia Ipanema", "Logistica Andorinha",
		"Construtora Planalto", "Alimentos Serra Azul", "Editora Farol",
		"Transportes Bandeirante",
	},
	words: []string{
		"relatorio", "janela", "mercado", "sinal", "porto", "jardim",
		"ponte", "castelo", "campo", "pedreira", "vale", "ancora",
		"farol", "tela", "correnteza", "brasa", "forja", "geleira",
		"horizonte", "ilha", "lanterna", "espelho", "orbita", "prisma",
	},
	emailDomains: []string{"exemplo.com.br", "exemplo.net.br", "correio.test", "caixa.test"},
	phoneFormat:  "(##) 9####-####",
	streetFormat: "%s, ###",
}

// supported lists the locales with dedicated word tables. The first
// entry is the fallback for unmatched tags.
var supported = []language.Tag{
	language.English,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// tableFor resolves a locale tag to its word table via language
// matching, so e.g. "pt" and "pt-BR" both land on the Brazilian table.
func tableFor(tag language.Tag) table {
	_, idx, _ := matcher.Match(tag)
	switch supported[idx] {
	case language.BrazilianPortuguese:
		return tablePTBR
	default:
		return tableEN
	}
}
