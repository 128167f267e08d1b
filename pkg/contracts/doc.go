// Package contracts manages data contracts: a schema bound to an
// owner, a lifecycle status, and the expectations the schema implies.
//
// Contracts are persisted one JSON file per contract under a
// directory, which keeps them diffable and versionable alongside the
// datasets they govern. The Store interface exists so an API layer
// does not care about the storage shape.
package contracts
