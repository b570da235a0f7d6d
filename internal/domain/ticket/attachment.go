package ticket

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"novita/internal/shared/constants"
)

var allowedAttachmentExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
}

// ValidateAttachment checks a candidate file against the upload policy.
// Callers treat a failure as a per-file warning, not a fatal error: the
// ticket is still created and the accepted files are kept.
func ValidateAttachment(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedAttachmentExtensions[ext] {
		return fmt.Errorf("file type not allowed: %s", filename)
	}
	if size > constants.MaxAttachmentSize {
		return fmt.Errorf("file too large: %s exceeds 10MB limit", filename)
	}
	if size <= 0 {
		return fmt.Errorf("file is empty: %s", filename)
	}
	return nil
}

// Attachment is a stored file linked to a ticket. StoragePath is the key
// under which the file storage keeps the bytes; the original filename is
// preserved separately for download headers.
type Attachment struct {
	id          uint
	ticketID    uint
	uploaderID  uint
	filename    string
	storagePath string
	size        int64
	contentType string
	createdAt   time.Time
}

func NewAttachment(ticketID, uploaderID uint, filename, storagePath string, size int64, contentType string) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if len(storagePath) == 0 {
		return nil, fmt.Errorf("storage path is required")
	}
	if err := ValidateAttachment(filename, size); err != nil {
		return nil, err
	}

	return &Attachment{
		ticketID:    ticketID,
		uploaderID:  uploaderID,
		filename:    filename,
		storagePath: storagePath,
		size:        size,
		contentType: contentType,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructAttachment(id, ticketID, uploaderID uint, filename, storagePath string, size int64, contentType string, createdAt time.Time) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		uploaderID:  uploaderID,
		filename:    filename,
		storagePath: storagePath,
		size:        size,
		contentType: contentType,
		createdAt:   createdAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) UploaderID() uint {
	return a.uploaderID
}

func (a *Attachment) Filename() string {
	return a.filename
}

func (a *Attachment) StoragePath() string {
	return a.storagePath
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
