/*
Package catalog populates recognizers from declarative bindings.

A Binding names a recognizer, a target and an action:

	recognizer: swipe
	target: gallery
	action: next

Targets are in-process values, so bindings refer to them by name and a
Resolver maps names back to registry.Target values when the bindings are
applied:

	set := gesturerecognizer.NewSet()
	_ = set.Register("swipe", gesturerecognizer.New())

	targets := catalog.Targets{"gallery": galleryView}
	n, err := catalog.Apply(ctx, manifest.File("bindings.yaml"), targets, set)

Sources:
  - manifest: YAML documents
  - ddb: DynamoDB single-table storage
  - mock: in-memory source for tests

Apply logs through the zerolog logger attached to ctx, if any.
*/
package catalog
