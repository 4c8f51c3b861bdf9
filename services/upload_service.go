package services

import (
	"ecommerce-backend/constants"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
)

type IUploadService interface {
	Destination(originalName string) (filename string, path string)
	PublicURL(filename string) string
}

// UploadService names stored images "<field>_<snowflake><ext>". Snowflake ids
// carry the millisecond timestamp plus a sequence, so same-millisecond uploads
// get distinct names.
type UploadService struct {
	dir     string
	baseURL string
	node    *snowflake.Node
}

func NewUploadService(dir string, baseURL string) (IUploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create upload dir")
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, errors.Wrap(err, "create snowflake node")
	}
	return &UploadService{dir: dir, baseURL: baseURL, node: node}, nil
}

func (s *UploadService) Destination(originalName string) (string, string) {
	filename := fmt.Sprintf("%s_%s%s", constants.UploadFieldName, s.node.Generate().String(), filepath.Ext(originalName))
	return filename, filepath.Join(s.dir, filename)
}

func (s *UploadService) PublicURL(filename string) string {
	return s.baseURL + constants.ImagesPath + "/" + filename
}
