/* Copyright (c) 2013 The s3cache AUTHORS. All rights reserved.
 * Copyright (c) 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file in the current directory for license terms
 *
 * Package s3cache provides an implementation of httpcache.Cache that
 * stores and retrieves data using Amazon S3. It backs the shared web
 * cache for fetched tournament documents so multiple tool instances
 * hit origin hosts at most once per TTL. Based on the original
 * github.com/sourcegraph/s3cache, updated for aws-sdk-go-v2.
 */
package s3cache

import (
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const objectKeyPrefix = "webcache"

// Cache objects store and retrieve data using Amazon S3.
type Cache struct {
	// Config is the Amazon S3 configuration.
	Config aws.Config

	// Client is the s3 client the cache uses. Init() populates it from
	// the default Config; callers can override it with their own client
	// before first use if desired.
	Client *s3.Client

	// bucketName is the name of the S3 bucket backing the cache.
	bucketName string

	// compress indicates whether cache entries are gzipped in Set and
	// gunzipped in Get. Compressed entry keys get a ".gz" suffix.
	compress bool

	// logErrors controls whether errors are logged or silently dropped.
	logErrors bool

	// The context to specify when initiating s3 requests
	ctx context.Context
}

// New returns a new Cache with underlying storage in the specified
// Amazon S3 bucket. Callers should take care to invoke Init() on the
// returned Cache object before use.
func New(ctx context.Context, bucketName string, compress bool,
	logErrors bool) *Cache {

	return &Cache{
		ctx:        ctx,
		bucketName: bucketName,
		compress:   compress,
		logErrors:  logErrors,
	}
}

// Init loads AWS configuration and verifies the bucket is accessible.
// The default configuration sources are environment variables (e.g.
// AWS_ACCESS_KEY_ID and AWS_SECRET_KEY) and the shared configuration
// and credentials files. To use different credentials, modify the
// returned Cache object's Config and Client fields.
func (c *Cache) Init() error {
	var err error
	c.Config, err = config.LoadDefaultConfig(c.ctx)
	if err != nil {
		return fmt.Errorf("s3cache.init: failed to load AWS config: %w", err)
	}
	c.Client = s3.NewFromConfig(c.Config)

	// Permission check: verify bucket exists and is accessible
	if _, err = c.Client.HeadBucket(c.ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucketName),
	}); err != nil {
		return fmt.Errorf("s3cache.init: head bucket failed for %s: %w",
			c.bucketName, err)
	}

	// Permission check: verify ability to list objects
	if _, err = c.Client.ListObjectsV2(c.ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(c.bucketName),
		MaxKeys: aws.Int32(1),
	}); err != nil {
		return fmt.Errorf("s3cache.init: list objects failed for %s: %w",
			c.bucketName, err)
	}

	return nil
}

// Get retrieves the cached data under key, reporting a miss on any
// failure.
func (c *Cache) Get(key string) ([]byte, bool) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.objectKey(key)),
	}

	resp, err := c.Client.GetObject(c.ctx, input)
	if err != nil {
		if c.logErrors {
			var apiErr smithy.APIError
			// no such key just indicates a cache miss
			if !(errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchKey") {
				log.Printf("s3cache.get: failed to get object %v/%v: %v",
					*input.Bucket, *input.Key, err)
			}
		}
		return []byte{}, false
	}
	defer resp.Body.Close()

	rdr := io.Reader(resp.Body)
	if c.compress {
		gr, err := gzip.NewReader(rdr)
		if err != nil {
			if c.logErrors {
				log.Printf("s3cache.get: failed to open compressed object %v/%v: %v",
					*input.Bucket, *input.Key, err)
			}
			return nil, false
		}
		defer gr.Close()
		rdr = gr
	}

	data, err := io.ReadAll(rdr)
	if err != nil {
		if c.logErrors {
			log.Printf("s3cache.get: failed to read object %v/%v: %v",
				*input.Bucket, *input.Key, err)
		}
	}

	return data, err == nil
}

// Set stores the provided data in the cache under the given key.
func (c *Cache) Set(key string, data []byte) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.objectKey(key)),
		Body:   bytes.NewReader(data),
	}

	if c.compress {
		var buf bytes.Buffer
		gw := gzip.NewWriter(&buf)
		_, err := gw.Write(data)
		if err == nil {
			err = gw.Close()
		}
		if err != nil {
			if c.logErrors {
				log.Printf("s3cache.set: failed to gzip data for %v/%v: %v",
					*input.Bucket, *input.Key, err)
			}
			return
		}
		input.Body = &buf
		input.ContentEncoding = aws.String("gzip")
	}

	if _, err := c.Client.PutObject(c.ctx, input); err != nil {
		if c.logErrors {
			log.Printf("s3cache.set: put failed for %v/%v: %v", *input.Bucket,
				*input.Key, err)
		}
	}
}

// Delete removes the cached data under key, if any.
func (c *Cache) Delete(key string) {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucketName),
		Key:    aws.String(c.objectKey(key)),
	}

	if _, err := c.Client.DeleteObject(c.ctx, input); err != nil {
		if c.logErrors {
			log.Printf("s3cache.delete: delete failed: %v", err)
		}
	}
}

// objectKey hashes the cache key (typically a URL) into a stable S3
// object key.
func (c *Cache) objectKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	objKey := fmt.Sprintf("%v/%v", objectKeyPrefix, hex.EncodeToString(sum[:]))
	if c.compress {
		objKey += ".gz"
	}

	return objKey
}
