package contractsapi_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipearaujo/datacontracts/modules/contractsapi"
	"github.com/felipearaujo/datacontracts/pkg/contracts"
	"github.com/felipearaujo/datacontracts/pkg/report"
	"github.com/felipearaujo/datacontracts/pkg/schema"
)

func newServer(t *testing.T) (*httptest.Server, *contracts.FileStore) {
	t.Helper()
	store, err := contracts.NewFileStore(t.TempDir())
	require.NoError(t, err)

	srv := httptest.NewServer(contractsapi.Router(contractsapi.RouterOptions{Store: store}))
	t.Cleanup(srv.Close)
	return srv, store
}

func customerSchema(t *testing.T) *schema.Schema {
	t.Helper()
	minAge, maxAge := 18.0, 120.0
	s, err := schema.New("customer", []schema.Field{
		{Name: "email", Type: schema.TypeString, Required: true},
		{Name: "age", Type: schema.TypeInteger, Required: true,
			Constraints: schema.Constraints{MinValue: &minAge, MaxValue: &maxAge}},
	})
	require.NoError(t, err)
	return s
}

func createContract(t *testing.T, srv *httptest.Server) contracts.Contract {
	t.Helper()
	body, err := json.Marshal(contracts.Contract{
		Name:   "customer-v1",
		Owner:  "data-eng",
		Schema: customerSchema(t),
	})
	require.NoError(t, err)

	resp, err := http.Post(srv.URL+"/contracts", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created contracts.Contract
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotEqual(t, uuid.Nil, created.ID)
	return created
}

func TestContractCRUD(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)
	created := createContract(t, srv)

	t.Run("get", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/contracts/" + created.ID.String())
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got contracts.Contract
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "customer-v1", got.Name)
		assert.Equal(t, contracts.StatusDraft, got.Status)
		require.NotNil(t, got.Schema)
		assert.Equal(t, "customer", got.Schema.Name())
	})

	t.Run("list", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/contracts")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var list []contracts.Contract
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		require.Len(t, list, 1)
		assert.Equal(t, created.ID, list[0].ID)
	})

	t.Run("update", func(t *testing.T) {
		updated := created
		updated.Status = contracts.StatusActive
		body, err := json.Marshal(updated)
		require.NoError(t, err)

		req, err := http.NewRequest(http.MethodPut, srv.URL+"/contracts/"+created.ID.String(), bytes.NewReader(body))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got contracts.Contract
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, contracts.StatusActive, got.Status)
	})

	t.Run("delete", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodDelete, srv.URL+"/contracts/"+created.ID.String(), nil)
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp, err = http.Get(srv.URL + "/contracts/" + created.ID.String())
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCreateRejectsInvalidContract(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	resp, err := http.Post(srv.URL+"/contracts", "application/json",
		strings.NewReader(`{"name":"","schema":null}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetRejectsMalformedID(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)

	resp, err := http.Get(srv.URL + "/contracts/not-a-uuid")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestValidateUpload(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)
	created := createContract(t, srv)

	t.Run("raw JSON body with a failing record", func(t *testing.T) {
		payload := `[
			{"email":"a@example.com","age":30},
			{"email":"b@example.com","age":7}
		]`
		resp, err := http.Post(srv.URL+"/contracts/"+created.ID.String()+"/validate",
			"application/json", strings.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		rep, err := report.Parse(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "customer", rep.SchemaName)
		assert.False(t, rep.Success)
		assert.NotZero(t, rep.Failed)
	})

	t.Run("multipart CSV upload", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", "customers.csv")
		require.NoError(t, err)
		fmt.Fprint(fw, "email,age\na@example.com,30\nb@example.com,45\n")
		require.NoError(t, mw.Close())

		resp, err := http.Post(srv.URL+"/contracts/"+created.ID.String()+"/validate",
			mw.FormDataContentType(), &buf)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		rep, err := report.Parse(resp.Body)
		require.NoError(t, err)
		assert.True(t, rep.Success)
		assert.Zero(t, rep.Failed)
	})

	t.Run("unknown contract", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/contracts/"+uuid.NewString()+"/validate",
			"application/json", strings.NewReader(`[]`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t)
	created := createContract(t, srv)

	t.Run("returns records and a passing report", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/contracts/"+created.ID.String()+"/generate?count=25&seed=42",
			"application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Records []map[string]any `json:"records"`
			Report  *report.Report   `json:"report"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Len(t, body.Records, 25)
		require.NotNil(t, body.Report)
		assert.True(t, body.Report.Success)
	})

	t.Run("rejects out-of-range count", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/contracts/"+created.ID.String()+"/generate?count=0",
			"application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
