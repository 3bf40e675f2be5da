/*
Package ddb stores binding catalogs in a DynamoDB table.

Bindings use a single-table layout. Keys are expanded from an index map whose
macros name item attributes:

	PK: "RECOGNIZER#{Recognizer}"   // one partition per recognizer
	SK: "BINDING#{Target}#{Action}" // one item per binding

Every item also carries EntityType = "Binding" so a full-table load can skip
unrelated items.

Configuration is read from the environment, optionally through .env files:

	AWS_ACCESS_KEY, AWS_SECRET_KEY  static credentials (optional)
	AWS_REGION                      required
	AWS_DDB_TABLE                   required
	AWS_DDB_ENDPOINT                optional, e.g. a local DynamoDB

Usage:

	cfg, err := ddb.LoadConfig()
	client, err := ddb.NewClient(ctx, cfg)
	store := ddb.New(client, cfg.Table)

	err = store.Put(ctx, catalog.Binding{Recognizer: "swipe", Target: "gallery", Action: "next"})
	n, err := catalog.Apply(ctx, store, targets, set)
*/
package ddb
