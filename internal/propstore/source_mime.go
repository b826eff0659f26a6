package propstore

import (
	"io"

	"github.com/gabriel-vasile/mimetype"

	"github.com/simonhull/listprops/internal/registry"
	"github.com/simonhull/listprops/internal/types"
)

// mimeSource sniffs the content type from the leading bytes of the file.
type mimeSource struct{}

func (mimeSource) Name() string { return "mime" }

func (mimeSource) Collect(t *registry.Target, emit registry.Emit) error {
	if t.Info.Size() == 0 {
		return nil
	}

	mtype, err := mimetype.DetectReader(io.NewSectionReader(t.Reader, 0, t.Info.Size()))
	if err != nil {
		return Warnings{{Stage: "mime", Message: err.Error()}}
	}

	emit(types.KeyMIMEType, types.Text(mtype.String()))
	return nil
}
