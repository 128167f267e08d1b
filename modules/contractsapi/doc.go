// Package contractsapi exposes contract management over HTTP.
//
// The module mounts a chi router with CRUD endpoints for contracts plus
// two pipeline endpoints: validating an uploaded dataset against a
// contract's schema, and generating a synthetic dataset that is
// validated before it is returned.
//
// # Usage
//
//	store, _ := contracts.NewFileStore("contracts")
//	r := chi.NewRouter()
//	r.Mount("/api/v1", contractsapi.Router(contractsapi.RouterOptions{
//		Store:  store,
//		Logger: log,
//	}))
//
// # Endpoints
//
//	GET    /contracts                 list contracts, newest first
//	POST   /contracts                 create a contract
//	GET    /contracts/{id}            fetch one contract
//	PUT    /contracts/{id}            replace a contract
//	DELETE /contracts/{id}            remove a contract
//	POST   /contracts/{id}/validate   validate an uploaded CSV/JSON dataset
//	POST   /contracts/{id}/generate   generate and validate synthetic records
//
// Validation endpoints return the run report as the response body even
// when expectations fail; a failing dataset is a 200 with success=false.
package contractsapi
