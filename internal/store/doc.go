// Roomrec - Community Room Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roomrec

/*
Package store holds the authoritative room collection and its durable table.

The collection lives in memory; the table is a single CSV document with the
fixed header

	ID,Name,Creator ID,Description,Skills,Position,Tracks,Combined_Features,CreatedAt,Members,CoverPicture

that is read once by Load and rewritten in full by Save. Combined_Features is
written for readers of the file but always recomputed on Load.

Backends:

  - local: a file in a directory, written via temp file + rename under an
    advisory flock on "<table>.lock"
  - memory: process-local, for tests and ephemeral deployments
  - badger: an embedded BadgerDB key
  - minio: any S3-compatible object store through minio-go
  - s3: Amazon S3 through aws-sdk-go-v2

Remote backends (minio, s3) are wrapped in a circuit breaker so a failing
object store is reported quickly instead of stalling every mutation.

Tables can be written zstd- or lz4-compressed. Load detects the encoding from
the leading magic bytes, so changing the compression setting never strands an
existing table.

Store itself does not persist or reindex on Insert/Remove; the recommendation
engine sequences mutate, Save and refit under its own write lock.
*/
package store
