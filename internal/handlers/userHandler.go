package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi"

	"enrollify/internal/media"
	"enrollify/internal/models"
	"enrollify/internal/store"
	httputil "enrollify/internal/utility/http"
)

const (
	maxImageSize = 3 << 20 // 3 MiB
	uploadFolder = "user_uploads"
)

// requiredFields is checked in this order; the first missing one names the
// 400 response. Field errors are reported before the image check.
var requiredFields = []string{
	"country", "city", "course", "proficiency", "fullName", "fatherName",
	"email", "cnic", "phone", "dob", "gender", "qualification", "hasLaptop",
}

// UserHandler bundles the registration HTTP handlers.
type UserHandler struct {
	store    store.Store
	uploader media.Uploader
}

func NewUserHandler(s store.Store, u media.Uploader) *UserHandler {
	return &UserHandler{store: s, uploader: u}
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Unable to parse form", err)
		return
	}

	// The image gate sits at the accept boundary: an oversized or non-image
	// payload is rejected before validation and never uploaded.
	var fileHeader *multipart.FileHeader
	if files := r.MultipartForm.File["image"]; len(files) > 0 {
		fileHeader = files[0]
		if fileHeader.Size > maxImageSize {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, "Image must be 3MB or smaller", nil)
			return
		}
		if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
			httputil.RespondError(w, http.StatusUnsupportedMediaType, "Only image files are accepted", nil)
			return
		}
	}

	fields := make(map[string]string, len(r.MultipartForm.Value))
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	for _, field := range requiredFields {
		if fields[field] == "" {
			httputil.RespondError(w, http.StatusBadRequest, fmt.Sprintf("%s is required", field), nil)
			return
		}
	}
	if fileHeader == nil {
		httputil.RespondError(w, http.StatusBadRequest, "Image is required", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}
	defer file.Close()

	upload, err := h.uploader.Upload(r.Context(), file, uploadFolder)
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	user := buildUser(fields, upload)
	if err := h.store.Append(r.Context(), user); err != nil {
		// The image is already hosted at this point; there is no
		// compensation for it, the record just never lands.
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	httputil.RespondUser(w, http.StatusCreated, "User created successfully", &user)
}

func (h *UserHandler) GetUserByCNIC(w http.ResponseWriter, r *http.Request) {
	cnic := chi.URLParam(r, "cnic")

	user, err := h.store.FindByCNIC(r.Context(), cnic)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httputil.RespondError(w, http.StatusNotFound, "User not found", nil)
			return
		}
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error", err)
		return
	}

	httputil.RespondUser(w, http.StatusOK, "", &user)
}

// Health reports liveness for deploy probes.
func Health(w http.ResponseWriter, r *http.Request) {
	httputil.RespondSuccess(w)
}

// buildUser assembles the stored record: every submitted field verbatim,
// fatherCnic mapped to fatherNic (null when absent), plus the derived fields.
func buildUser(fields map[string]string, upload *media.UploadResult) models.User {
	now := time.Now()
	user := models.User{
		ID:            strconv.FormatInt(now.UnixMilli(), 10),
		Country:       fields["country"],
		City:          fields["city"],
		Course:        fields["course"],
		Proficiency:   fields["proficiency"],
		FullName:      fields["fullName"],
		FatherName:    fields["fatherName"],
		Email:         fields["email"],
		CNIC:          fields["cnic"],
		Phone:         fields["phone"],
		DOB:           fields["dob"],
		Gender:        fields["gender"],
		Qualification: fields["qualification"],
		HasLaptop:     fields["hasLaptop"],
		ImageURL:      upload.URL,
		ImagePublicID: upload.PublicID,
		CreatedAt:     now.Format(time.RFC3339),
	}
	if v, ok := fields["fatherCnic"]; ok {
		user.FatherNic = &v
	}
	for key, value := range fields {
		if key == "fatherCnic" || isRequiredField(key) {
			continue
		}
		if user.Extra == nil {
			user.Extra = make(map[string]string)
		}
		user.Extra[key] = value
	}
	return user
}

func isRequiredField(name string) bool {
	for _, f := range requiredFields {
		if f == name {
			return true
		}
	}
	return false
}
