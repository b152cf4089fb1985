// Package dataset implements the cache-backed load used by every external dataset.
//
// A Loader is parameterized by a cache id, a parse function and a fetch function:
//
//  1. Read the payload stored under the cache id and parse it. On success no network access happens.
//  2. On a cache miss (absent, unreadable or unparsable payload) fetch a fresh payload, parse it,
//     overwrite the cached payload and return the parsed value.
//  3. A remote failure or an unparsable remote payload fails the load. There is no further fallback
//     and no partial value.
//
// Refresh skips step 1 for explicit reloads.
package dataset
