package handler

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/hszk-dev/mediahub/internal/domain/apperr"
	"github.com/hszk-dev/mediahub/internal/domain/model"
	"github.com/hszk-dev/mediahub/internal/usecase"
)

// maxMultipartMemory is the part of a multipart body kept in memory; the
// rest spills to temporary files.
const maxMultipartMemory = 32 << 20

// VideoHandler handles video-related HTTP requests.
type VideoHandler struct {
	svc usecase.VideoService
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(svc usecase.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /v1/videos
func (h *VideoHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	owner, err := optionalQueryID(r, "userId")
	if err != nil {
		Fail(w, r, err)
		return
	}

	videos, err := h.svc.ListVideos(r.Context(), usecase.ListVideosInput{
		Page:          q.Get("page"),
		Limit:         q.Get("limit"),
		Query:         q.Get("query"),
		SortField:     q.Get("sortBy"),
		SortDirection: q.Get("sortType"),
		Owner:         owner,
	})
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, mapSlice(videos, toVideoResponse), "Videos fetched successfully")
}

// Publish handles POST /v1/videos (multipart/form-data)
func (h *VideoHandler) Publish(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		Fail(w, r, apperr.Validation("Request must be multipart/form-data"))
		return
	}
	defer r.MultipartForm.RemoveAll()

	form := PublishVideoForm{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
	}
	if raw := strings.TrimSpace(r.FormValue("duration")); raw != "" {
		if form.Duration, err = parseDuration(raw); err != nil {
			Fail(w, r, err)
			return
		}
	}
	if err := validateStruct(&form); err != nil {
		Fail(w, r, err)
		return
	}

	videoFile, closeVideo, err := formFile(r, "videoFile")
	if err != nil {
		Fail(w, r, err)
		return
	}
	defer closeVideo()

	thumbnail, closeThumb, err := formFile(r, "thumbnail")
	if err != nil {
		Fail(w, r, err)
		return
	}
	defer closeThumb()

	video, err := h.svc.PublishVideo(r.Context(), usecase.PublishVideoInput{
		Actor:       userID,
		Title:       form.Title,
		Description: form.Description,
		Duration:    form.Duration,
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
	})
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusCreated, toVideoResponse(video), "Video uploaded successfully")
}

// Get handles GET /v1/videos/{videoID}
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	videoID, err := pathID(r, "videoID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	video, err := h.svc.GetVideo(r.Context(), videoID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toVideoResponse(video), "Video fetched successfully")
}

// Update handles PATCH /v1/videos/{videoID} (multipart or url-encoded form)
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	videoID, err := pathID(r, "videoID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		if !errors.Is(err, http.ErrNotMultipart) {
			Fail(w, r, apperr.Validation("Invalid form body"))
			return
		}
		if err := r.ParseForm(); err != nil {
			Fail(w, r, apperr.Validation("Invalid form body"))
			return
		}
	} else {
		defer r.MultipartForm.RemoveAll()
	}

	input := usecase.UpdateVideoInput{
		Actor:       userID,
		VideoID:     videoID,
		Title:       formField(r, "title"),
		Description: formField(r, "description"),
	}
	if raw := formField(r, "duration"); raw != nil {
		d, err := parseDuration(*raw)
		if err != nil {
			Fail(w, r, err)
			return
		}
		input.Duration = &d
	}

	if r.MultipartForm != nil && len(r.MultipartForm.File["thumbnail"]) > 0 {
		thumbnail, closeThumb, err := formFile(r, "thumbnail")
		if err != nil {
			Fail(w, r, err)
			return
		}
		defer closeThumb()
		input.Thumbnail = thumbnail
	}

	video, err := h.svc.UpdateVideo(r.Context(), input)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toVideoResponse(video), "Video updated successfully")
}

// Delete handles DELETE /v1/videos/{videoID}
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	videoID, err := pathID(r, "videoID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	video, err := h.svc.DeleteVideo(r.Context(), userID, videoID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toVideoResponse(video), "Video deleted successfully")
}

// TogglePublish handles PATCH /v1/videos/toggle/publish/{videoID}
func (h *VideoHandler) TogglePublish(w http.ResponseWriter, r *http.Request) {
	userID, err := actor(r)
	if err != nil {
		Fail(w, r, err)
		return
	}
	videoID, err := pathID(r, "videoID")
	if err != nil {
		Fail(w, r, err)
		return
	}

	video, err := h.svc.TogglePublish(r.Context(), userID, videoID)
	if err != nil {
		Fail(w, r, err)
		return
	}

	Success(w, http.StatusOK, toVideoResponse(video), "Video publish status updated successfully")
}

// formField returns the value of a submitted form field, or nil when the
// field was not sent at all.
func formField(r *http.Request, name string) *string {
	values, ok := r.PostForm[name]
	if !ok || len(values) == 0 {
		return nil
	}
	v := values[0]
	return &v
}

// formFile opens an uploaded file. The returned func closes it.
func formFile(r *http.Request, name string) (*usecase.FileUpload, func(), error) {
	file, header, err := r.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, apperr.Validation(name + " is required")
		}
		return nil, func() {}, apperr.Validation("Invalid " + name + " upload")
	}
	return toFileUpload(file, header), func() { _ = file.Close() }, nil
}

func toFileUpload(file multipart.File, header *multipart.FileHeader) *usecase.FileUpload {
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &usecase.FileUpload{
		Reader:      file,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: contentType,
	}
}

// parseDuration accepts finite positive seconds only; strconv happily parses
// "NaN" and "Inf".
func parseDuration(raw string) (float64, error) {
	d, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, apperr.Validation("duration must be a number")
	}
	if !model.ValidDuration(d) {
		return 0, apperr.Validation("duration must be a positive number")
	}
	return d, nil
}
