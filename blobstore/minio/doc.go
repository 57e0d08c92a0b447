// Package minio stores documents in MinIO or any other S3-compatible
// server through the MinIO client.
//
//	store, err := minio.New("localhost:9000", "documents", minio.Options{
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	    Prefix:    "pages/",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := roletree.FromStore(ctx, store, "home.json.zst")
//
// Use NewStore to wrap a preconfigured *minio.Client.
package minio
