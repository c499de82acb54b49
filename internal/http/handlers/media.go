package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-social-feed/internal/errors"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/service"
)

// MediaUploadURL выдаёт presigned PUT URL. Клиент загружает файл напрямую в S3
// и передаёт полученный key в подтверждение (аватар) или в media_url поста.
func (h *Handlers) MediaUploadURL(w http.ResponseWriter, r *http.Request) {
	var in uploadURLRequest
	if err := h.decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	info, err := h.svc.MediaUploadURL(r.Context(), service.MediaUploadInput{
		UserID:        callerID(r),
		Kind:          models.MediaKind(in.Kind),
		ContentType:   in.ContentType,
		ContentLength: in.ContentLength,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadURLResponse{
		UploadURL:       info.UploadURL,
		Key:             info.Key,
		ExpiresIn:       int64(info.Expires.Seconds()),
		RequiredHeaders: info.RequiredHeaders,
	})
}

func (h *Handlers) ConfirmAvatar(w http.ResponseWriter, r *http.Request) {
	var in confirmAvatarRequest
	if err := h.decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	u, err := h.svc.ConfirmAvatarUpload(r.Context(), callerID(r), in.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userEnvelope{User: userFromModel(*u, true)})
}
