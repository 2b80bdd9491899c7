package storage

import (
	"context"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/DevHubCode/DevHub/internal/apperr"
)

// maxTries limita o total de tentativas de envio ao object store.
const maxTries = 3

var whitespace = regexp.MustCompile(`\s+`)

type Uploader struct {
	Store ObjectStore
}

func NewUploader(store ObjectStore) *Uploader {
	return &Uploader{Store: store}
}

// Upload envia o payload com as tags publicas, repetindo em falha transitoria
// ate maxTries tentativas no total. Esgotadas as tentativas, devolve
// apperr.StorageError; a escrita local feita antes do envio nao e desfeita.
func (u *Uploader) Upload(ctx context.Context, key string, body []byte, contentType string) (etag string, attempts int, err error) {
	for {
		attempts++
		etag, err = u.Store.Put(ctx, key, body, contentType, PublicTags)
		if err == nil {
			return etag, attempts, nil
		}
		if attempts == maxTries {
			return "", attempts, &apperr.StorageError{Op: "upload " + key, Err: err}
		}
	}
}

// PhotoKey deriva a chave remota da foto de perfil:
// <categoria>/images/<id>_<nome>/<nomeSemEspacos>_profile-photo<ext>.
func PhotoKey(categoria string, id uuid.UUID, nome, ext string) string {
	return fmt.Sprintf("%s/images/%s_%s/%s", categoria, id, nome, PhotoFileName(nome, ext))
}

// PhotoFileName remove todo o espaco em branco do nome; nome em branco vira
// o placeholder "desconhecido".
func PhotoFileName(nome, ext string) string {
	nome = whitespace.ReplaceAllString(nome, "")
	if nome == "" {
		nome = "desconhecido"
	}
	return nome + "_profile-photo" + ext
}
