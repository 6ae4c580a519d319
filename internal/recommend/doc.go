// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

// Package recommend matches user profiles to community rooms.
//
// # Architecture
//
// The Engine owns the pipeline from the durable room table to ranked results:
//
//   - RoomStore: the authoritative collection and its table (package store)
//   - models.Compose: derives each room's searchable document
//   - vectorspace: fits a TF-IDF index over all documents
//   - ranking: scores a projected profile against the index by cosine similarity
//
// Every mutation rebuilds the index from the full collection. The rooms and
// their index are published together as one immutable snapshot, so a query
// never sees rows and vectors from different generations.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), st, logger)
//	if err != nil {
//	    return err
//	}
//	if err := engine.Start(ctx); err != nil {
//	    return err
//	}
//
//	rooms, err := engine.Recommend(ctx, "python ml", "engineer", 4)
//
// # Thread Safety
//
// Queries are lock-free: they load the current snapshot pointer. AddRoom,
// DeleteRoom and Reload hold a single write lock for the whole
// mutate, persist, refit and publish sequence, which also keeps table writes
// from interleaving. Concurrent ranking work is bounded by a semaphore.
package recommend
