package fsdk

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

const receiptsPath = "/api/receipts"

// ReceiptsService manages uploaded expense receipts.
type ReceiptsService struct {
	sdk *Sdk
}

type ReceiptListOptions struct {
	ListOptions
	Status   string
	Category string
}

// UploadReceiptRequest carries the receipt file plus optional metadata
// hints for the extraction pipeline.
type UploadReceiptRequest struct {
	Filename string
	Data     []byte
	Vendor   string
	Category string
}

// allowed upload extensions, matching the backend's accept list
var receiptExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".heic": true,
}

// SupportedReceiptFile reports whether a filename has an extension the
// receipt pipeline accepts.
func SupportedReceiptFile(filename string) bool {
	return receiptExtensions[strings.ToLower(filepath.Ext(filename))]
}

func (r UploadReceiptRequest) validate() error {
	if err := validateRequired("filename", r.Filename); err != nil {
		return err
	}
	if len(r.Data) == 0 {
		return validationError("file", "must not be empty")
	}
	if !SupportedReceiptFile(r.Filename) {
		return validationError("filename", fmt.Sprintf("unsupported file type %q", filepath.Ext(r.Filename)))
	}
	return nil
}

func (s *ReceiptsService) List(ctx context.Context, opts ReceiptListOptions) ([]Receipt, error) {
	q := opts.values()
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	var receipts []Receipt
	if err := s.sdk.get(ctx, receiptsPath, q, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (s *ReceiptsService) Get(ctx context.Context, id int64) (*Receipt, error) {
	var receipt Receipt
	if err := s.sdk.get(ctx, fmt.Sprintf("%s/%d", receiptsPath, id), nil, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Upload sends a receipt file as multipart form data. The backend
// queues it for extraction; the returned receipt starts out pending.
func (s *ReceiptsService) Upload(ctx context.Context, req UploadReceiptRequest) (*Receipt, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	upload := &FileUpload{
		Field:    "file",
		Filename: req.Filename,
		Data:     req.Data,
		Extra:    map[string]string{},
	}
	if req.Vendor != "" {
		upload.Extra["vendor"] = req.Vendor
	}
	if req.Category != "" {
		upload.Extra["category"] = req.Category
	}
	var receipt Receipt
	if err := s.sdk.post(ctx, receiptsPath, upload, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (s *ReceiptsService) Delete(ctx context.Context, id int64) error {
	return s.sdk.delete(ctx, fmt.Sprintf("%s/%d", receiptsPath, id))
}
