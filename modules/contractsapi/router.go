package contractsapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/felipearaujo/datacontracts/pkg/contracts"
	"github.com/felipearaujo/datacontracts/pkg/datagen"
	"github.com/felipearaujo/datacontracts/pkg/dataset"
	"github.com/felipearaujo/datacontracts/pkg/logger"
	"github.com/felipearaujo/datacontracts/pkg/report"
	"github.com/felipearaujo/datacontracts/pkg/validate"
)

const (
	maxUploadBytes  = 32 << 20
	defaultGenCount = 100
	maxGenCount     = 10_000
)

// RouterOptions configures the contracts API module. Store is required;
// the rest defaults sensibly.
type RouterOptions struct {
	Store  contracts.Store
	Logger *slog.Logger
	Locale language.Tag
}

// Router builds the contracts API router.
func Router(opts RouterOptions) chi.Router {
	if opts.Store == nil {
		panic("contractsapi.Router: Store is required")
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}

	h := &handlers{
		store:  opts.Store,
		log:    log,
		locale: opts.Locale,
	}

	r := chi.NewRouter()
	r.Route("/contracts", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Put("/", h.update)
			r.Delete("/", h.remove)
			r.Post("/validate", h.validateUpload)
			r.Post("/generate", h.generate)
		})
	})
	return r
}

type handlers struct {
	store  contracts.Store
	log    *slog.Logger
	locale language.Tag
}

func (h *handlers) list(w http.ResponseWriter, r *http.Request) {
	list, err := h.store.List(r.Context())
	if err != nil {
		respondFromErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (h *handlers) create(w http.ResponseWriter, r *http.Request) {
	var c contracts.Contract
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "malformed contract body: "+err.Error())
		return
	}
	if err := h.store.Create(r.Context(), &c); err != nil {
		respondFromErr(w, err)
		return
	}
	h.log.Info("contract created",
		logger.ContractID(c.ID),
		logger.SchemaName(c.Schema.Name()),
	)
	respondJSON(w, http.StatusCreated, c)
}

func (h *handlers) get(w http.ResponseWriter, r *http.Request) {
	id, ok := contractID(w, r)
	if !ok {
		return
	}
	c, err := h.store.Get(r.Context(), id)
	if err != nil {
		respondFromErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *handlers) update(w http.ResponseWriter, r *http.Request) {
	id, ok := contractID(w, r)
	if !ok {
		return
	}
	var c contracts.Contract
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "malformed contract body: "+err.Error())
		return
	}
	if err := h.store.Update(r.Context(), id, &c); err != nil {
		respondFromErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *handlers) remove(w http.ResponseWriter, r *http.Request) {
	id, ok := contractID(w, r)
	if !ok {
		return
	}
	if err := h.store.Delete(r.Context(), id); err != nil {
		respondFromErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateUpload runs an uploaded dataset against the contract's
// expectations. The dataset arrives either as a multipart "file" part
// or as a raw CSV/JSON body.
func (h *handlers) validateUpload(w http.ResponseWriter, r *http.Request) {
	id, ok := contractID(w, r)
	if !ok {
		return
	}
	c, err := h.store.Get(r.Context(), id)
	if err != nil {
		respondFromErr(w, err)
		return
	}

	body, format, err := uploadBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}
	defer body.Close()

	var ds *dataset.Dataset
	switch format {
	case "csv":
		ds, err = dataset.FromCSV(body, c.Schema)
	default:
		ds, err = dataset.FromJSON(body, c.Schema)
	}
	if err != nil {
		respondFromErr(w, err)
		return
	}

	h.runAndRespond(w, c, ds)
}

// generate produces a synthetic dataset for the contract's schema and
// returns the records alongside their validation report.
func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	id, ok := contractID(w, r)
	if !ok {
		return
	}
	c, err := h.store.Get(r.Context(), id)
	if err != nil {
		respondFromErr(w, err)
		return
	}

	count := defaultGenCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count <= 0 || count > maxGenCount {
			respondError(w, http.StatusBadRequest, "invalid_request",
				"count must be an integer between 1 and "+strconv.Itoa(maxGenCount))
			return
		}
	}

	genOpts := []datagen.Option{}
	if h.locale != (language.Tag{}) {
		genOpts = append(genOpts, datagen.WithLocale(h.locale))
	}
	if raw := r.URL.Query().Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "seed must be an integer")
			return
		}
		genOpts = append(genOpts, datagen.WithSeed(seed))
	}

	ds, err := datagen.New(genOpts...).Generate(c.Schema, count)
	if err != nil {
		respondFromErr(w, err)
		return
	}

	rs, err := c.RuleSet()
	if err != nil {
		respondFromErr(w, err)
		return
	}
	res := validate.New(validate.WithLogger(h.log)).Run(ds, rs)
	h.log.Info("dataset generated",
		logger.ContractID(c.ID),
		logger.SchemaName(c.Schema.Name()),
		logger.RecordCount(ds.Len()),
		logger.Outcome(res.Success),
	)
	respondJSON(w, http.StatusOK, generateResponse{
		Records: ds.Records(),
		Report:  report.FromResult(res),
	})
}

type generateResponse struct {
	Records []dataset.Record `json:"records"`
	Report  *report.Report   `json:"report"`
}

func (h *handlers) runAndRespond(w http.ResponseWriter, c *contracts.Contract, ds *dataset.Dataset) {
	rs, err := c.RuleSet()
	if err != nil {
		respondFromErr(w, err)
		return
	}
	res := validate.New(validate.WithLogger(h.log)).Run(ds, rs)
	h.log.Info("validation run finished",
		logger.ContractID(c.ID),
		logger.SchemaName(c.Schema.Name()),
		logger.RunID(res.RunID),
		logger.RecordCount(ds.Len()),
		logger.Outcome(res.Success),
	)
	respondJSON(w, http.StatusOK, report.FromResult(res))
}

func contractID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "contract id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}

// uploadBody extracts the dataset stream and its format ("csv" or
// "json") from either a multipart upload or a raw body.
func uploadBody(r *http.Request) (io.ReadCloser, string, error) {
	ct := r.Header.Get("Content-Type")
	mediaType, _, _ := mime.ParseMediaType(ct)

	if strings.HasPrefix(mediaType, "multipart/") {
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			return nil, "", err
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			return nil, "", err
		}
		format := "json"
		if strings.EqualFold(filepath.Ext(header.Filename), ".csv") {
			format = "csv"
		}
		return file, format, nil
	}

	format := "json"
	if mediaType == "text/csv" {
		format = "csv"
	}
	return http.MaxBytesReader(nil, r.Body, maxUploadBytes), format, nil
}
