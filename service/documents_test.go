package service

import (
	"context"
	"strings"
	"testing"

	"github.com/contractflow/backend/config"
)

func TestNewDocumentService(t *testing.T) {
	cfg := &config.MinioConfig{
		Endpoint:  "localhost:9000",
		AccessKey: "test",
		SecretKey: "test",
		Bucket:    "test",
		UseSSL:    false,
	}

	svc, err := NewDocumentService(cfg)
	// Client creation does not dial; the connection is exercised on first use
	if err != nil {
		t.Logf("NewDocumentService returned error: %v", err)
	} else if svc == nil {
		t.Error("Expected non-nil service")
	}
}

func TestDocumentServiceObjectName(t *testing.T) {
	svc := &DocumentService{}

	tests := []struct {
		name       string
		contractID int
		kind       string
		filename   string
		expected   string
	}{
		{"contract document", 12, "contract", "agreement.pdf", "contracts/12/contract/agreement.pdf"},
		{"submitted letter", 3, "letter", "cover.docx", "contracts/3/letter/cover.docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.ObjectName(tt.contractID, tt.kind, tt.filename); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestDocumentServicePublicURL(t *testing.T) {
	tests := []struct {
		name       string
		useSSL     bool
		endpoint   string
		bucket     string
		objectName string
		expected   string
	}{
		{
			name:       "http url",
			useSSL:     false,
			endpoint:   "localhost:9000",
			bucket:     "contract-documents",
			objectName: "contracts/1/contract/agreement.pdf",
			expected:   "http://localhost:9000/contract-documents/contracts/1/contract/agreement.pdf",
		},
		{
			name:       "https url",
			useSSL:     true,
			endpoint:   "minio.example.com",
			bucket:     "docs",
			objectName: "contracts/2/letter/cover.pdf",
			expected:   "https://minio.example.com/docs/contracts/2/letter/cover.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &DocumentService{
				bucket: tt.bucket,
				config: &config.MinioConfig{
					Endpoint: tt.endpoint,
					UseSSL:   tt.useSSL,
				},
			}

			if got := svc.PublicURL(tt.objectName); got != tt.expected {
				t.Errorf("Expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}

func TestDocumentServiceEnsureBucket(t *testing.T) {
	// Requires a live MinIO endpoint
	t.Skip("object store operations require a MinIO instance")
}

func TestDocumentServiceUploadWithCancelledContext(t *testing.T) {
	cfg := &config.MinioConfig{
		Endpoint:   "localhost:9000",
		AccessKey:  "test",
		SecretKey:  "test",
		Bucket:     "test",
		UseSSL:     false,
		ExpireDays: 7,
	}

	svc, err := NewDocumentService(cfg)
	if err != nil {
		t.Skip("Could not create document service")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := svc.Upload(ctx, "test", strings.NewReader("test"), 4, "text/plain"); err == nil {
		t.Log("Upload with cancelled context - error handling depends on client implementation")
	}
}
