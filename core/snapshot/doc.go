// Package snapshot publishes immutable values that are rebuilt wholesale.
//
// A Holder owns the current value behind an atomic pointer. Refresh runs the build function,
// deduplicated with singleflight so concurrent callers share one build, and swaps the pointer only
// when the build succeeds. Readers that already hold the previous value keep using it unchanged.
//
// # Usage
//
//	holder := snapshot.NewHolder(builder.Build)
//	snap, err := holder.Load(ctx)          // first build, cache-first
//	snap, err = holder.Refresh(ctx, true)  // explicit reload from remote sources
package snapshot
