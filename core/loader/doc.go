// Package loader registers the HTTP features of the service.
//
// A feature owns one route group (/prices, /currency, /history, /integrity) and decides at
// startup whether it can run; history, for example, is disabled without a database.
//
//	mgr := loader.NewManager()
//	mgr.Register(pricing.NewFeature(svc))
//	mgr.Register(history.NewFeature(db, svc, logg))
//	if err := mgr.LoadAll(app); err != nil { ... }
//
// Features load in registration order and LoadAll stops at the first failure.
package loader
