// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("a11y-dumps/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	doc, err := roletree.FromStore(ctx, store, "pages/home.json.zst")
//
// # Features
//
//   - Range reads for streaming large documents
//   - Multipart uploads through the SDK upload manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
