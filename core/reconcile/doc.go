// Package reconcile compares the key sets of several sources of truth.
//
// Every source is loaded concurrently, the union of their keys is built, and each key that is
// missing from at least one source is reported together with the sources that hold it.
//
// # Usage Example
//
//	report, err := reconcile.ReconcileAll(ctx,
//	    reconcile.NewStaticSource("catalog", hashNames),
//	    reconcile.NewStaticSource("vendor", bundleNames),
//	)
//
// Sources backed by I/O (a database table, an object listing) implement Source directly or wrap
// a loader function with FuncSource.
package reconcile
