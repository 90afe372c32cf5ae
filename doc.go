/*
Package pedigreestore stores probands and their family members in a single
DynamoDB table and serves them through API Gateway proxy functions.

Rows share one table under a composite key:

	pk                    sk                  type
	PROBAND#<id>          PROBAND#<id>        proband
	PROBAND#<proband_id>  FAMILY#<id>         family_member

Layout:
  - storagemodels: row types and key helpers
  - registry: per-type key templates
  - datastore, datastore/ddb, datastore/mock: typed storage over the table
  - pedigree: validation and the six operations
  - handlers: API Gateway functions, the router function and a local chi mux
  - config, logging: runtime settings and zap
  - cmd/pedigree: the CLI (serve, lambda, version)

Basic Usage:

	cfg, _ := config.Load("")
	stores, _ := pedigreestore.OpenStores(ctx, cfg)
	svc := pedigree.NewService(stores.Probands, stores.Members)
	h := &handlers.Handlers{Service: svc}
	lambda.Start(h.Functions()["router"])
*/
package pedigreestore
