// Package ingestion provides pipeline orchestration for loading product
// catalogs.
//
// The Pipeline type streams an OpenFoodFacts-shaped JSON export, including:
//   - Decoding loosely-typed product records into the canonical form
//   - Building the full-text search blob for each record
//   - Inserting records in batches on a worker pool
//   - Collecting unique leaf categories and upserting their paths to the
//     semantic index
//
// Per-record decode failures are logged and skipped; the batch continues.
// Backend failures abort the run.
package ingestion
