package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"maggamhub/config"
	"maggamhub/middleware"
	"maggamhub/models"
	"maggamhub/services/admin"
	"maggamhub/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fakes ---

type fakeBookingRepo struct {
	bookings []models.Booking
	err      error
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if f.err != nil {
		return f.err
	}
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(bookingID, status string) error {
	if f.err != nil {
		return f.err
	}
	// Zero-match updates succeed silently.
	for i := range f.bookings {
		if f.bookings[i].BookingID == bookingID {
			f.bookings[i].Status = status
		}
	}
	return nil
}

type fakeGalleryRepo struct {
	images []models.GalleryImage
	err    error
}

func (f *fakeGalleryRepo) Create(img *models.GalleryImage) error {
	if f.err != nil {
		return f.err
	}
	f.images = append(f.images, *img)
	return nil
}

func (f *fakeGalleryRepo) GetAll() ([]models.GalleryImage, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.images, nil
}

func (f *fakeGalleryRepo) DeleteByPublicID(publicID string) error {
	if f.err != nil {
		return f.err
	}
	kept := f.images[:0]
	for _, img := range f.images {
		if img.PublicID != publicID {
			kept = append(kept, img)
		}
	}
	f.images = kept
	return nil
}

type fakeMediaService struct {
	uploads    int
	destroys   int
	uploadErr  error
	destroyErr error
}

func (f *fakeMediaService) Upload(ctx context.Context, localFilePath, destFolder string) (*storage.UploadResult, error) {
	f.uploads++
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &storage.UploadResult{
		URL:      "https://res.example.com/" + destFolder + "/img.jpg",
		PublicID: destFolder + "/img",
	}, nil
}

func (f *fakeMediaService) Destroy(ctx context.Context, publicID string) error {
	f.destroys++
	return f.destroyErr
}

// --- Setup ---

type testEnv struct {
	bookings *fakeBookingRepo
	gallery  *fakeGalleryRepo
	media    *fakeMediaService
	auth     *admin.DefaultAuthService
	router   *gin.Engine
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := admin.HashPassword("secret")
	require.NoError(t, err)

	env := &testEnv{
		bookings: &fakeBookingRepo{},
		gallery:  &fakeGalleryRepo{},
		media:    &fakeMediaService{},
		auth: &admin.DefaultAuthService{
			Store:        admin.NewMemoryTokenStore(),
			PasswordHash: hash,
		},
	}

	hb := &HandlerBundle{
		Auth:           env.auth,
		AdminHandler:   NewAdminHandler(env.auth),
		BookingHandler: NewBookingHandler(env.bookings),
		GalleryHandler: NewGalleryHandler(env.gallery, env.media, "charvi_gallery"),
	}

	r := gin.New()
	r.POST("/booking", hb.BookingHandler.CreateBookingHandler)
	r.GET("/gallery", hb.GalleryHandler.ListGalleryHandler)
	r.POST("/admin/login", hb.AdminHandler.LoginHandler)

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AdminAuthMiddleware(hb.Auth))
	adminGroup.GET("/bookings", hb.BookingHandler.ListBookingsHandler)
	adminGroup.PUT("/update-status", hb.BookingHandler.UpdateStatusHandler)
	adminGroup.POST("/upload-image", hb.GalleryHandler.UploadImageHandler)
	adminGroup.DELETE("/delete-image", hb.GalleryHandler.DeleteImageHandler)

	env.router = r
	return env
}

func (e *testEnv) do(t *testing.T, method, path, token string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/admin/login", "", []byte(`{"password":"secret"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// --- Login ---

func TestLoginHandler_WrongPassword(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/admin/login", "", []byte(`{"password":"nope"}`))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginHandler_NewLoginInvalidatesOldToken(t *testing.T) {
	env := setupRouter(t)

	first := env.login(t)
	second := env.login(t)
	assert.NotEqual(t, first, second)

	w := env.do(t, http.MethodGet, "/admin/bookings", first, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/admin/bookings", second, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Admin gate ---

func TestAdminRoutes_RejectMissingOrBogusToken(t *testing.T) {
	env := setupRouter(t)
	env.login(t)

	routes := []struct {
		method string
		path   string
		body   []byte
	}{
		{http.MethodGet, "/admin/bookings", nil},
		{http.MethodPut, "/admin/update-status", []byte(`{"booking_id":"CMH-000000","status":"Done"}`)},
		{http.MethodPost, "/admin/upload-image", nil},
		{http.MethodDelete, "/admin/delete-image", []byte(`{"public_id":"x"}`)},
	}
	for _, rt := range routes {
		w := env.do(t, rt.method, rt.path, "", rt.body)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s without token", rt.method, rt.path)

		w = env.do(t, rt.method, rt.path, "bogus-token", rt.body)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s with bogus token", rt.method, rt.path)
	}
}

// --- Bookings ---

func TestCreateBooking_Success(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodPost, "/booking", "", []byte(`{"name":"A","phone":"1","service":"S"}`))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success   bool   `json:"success"`
		BookingID string `json:"booking_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Regexp(t, `^CMH-[0-9A-F]{6}$`, resp.BookingID)

	token := env.login(t)
	w = env.do(t, http.MethodGet, "/admin/bookings", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	require.Len(t, bookings, 1)
	assert.Equal(t, resp.BookingID, bookings[0].BookingID)
	assert.Equal(t, models.StatusPending, bookings[0].Status)
	assert.NotEmpty(t, bookings[0].CreatedAt)
}

func TestCreateBooking_MissingRequiredField(t *testing.T) {
	env := setupRouter(t)

	for _, body := range []string{
		`{"phone":"1","service":"S"}`,
		`{"name":"A","service":"S"}`,
		`{"name":"A","phone":"1"}`,
	} {
		w := env.do(t, http.MethodPost, "/booking", "", []byte(body))
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
	assert.Empty(t, env.bookings.bookings)
}

func TestCreateBooking_AmountNormalization(t *testing.T) {
	env := setupRouter(t)

	// Number and string amounts are both accepted and stored as strings.
	w := env.do(t, http.MethodPost, "/booking", "", []byte(`{"name":"A","phone":"1","service":"S","amount":2500}`))
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, "/booking", "", []byte(`{"name":"B","phone":"2","service":"S","amount":"1500"}`))
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, env.bookings.bookings, 2)
	assert.Equal(t, "2500", env.bookings.bookings[0].Amount)
	assert.Equal(t, "1500", env.bookings.bookings[1].Amount)
}

func TestCreateBooking_AmountDefaultsFromConfig(t *testing.T) {
	env := setupRouter(t)

	prev := config.AppConfig.DefaultBookingAmount
	config.AppConfig.DefaultBookingAmount = "500"
	t.Cleanup(func() { config.AppConfig.DefaultBookingAmount = prev })

	w := env.do(t, http.MethodPost, "/booking", "", []byte(`{"name":"A","phone":"1","service":"S"}`))
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, env.bookings.bookings, 1)
	assert.Equal(t, "500", env.bookings.bookings[0].Amount)
}

func TestUpdateStatus_UnknownID_SucceedsSilently(t *testing.T) {
	env := setupRouter(t)
	token := env.login(t)

	w := env.do(t, http.MethodPut, "/admin/update-status", token, []byte(`{"booking_id":"CMH-FFFFFF","status":"Done"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, env.bookings.bookings)
}

func TestUpdateStatus_MutatesMatchingBooking(t *testing.T) {
	env := setupRouter(t)
	env.bookings.bookings = []models.Booking{
		{BookingID: "CMH-AAAAAA", Status: models.StatusPending},
		{BookingID: "CMH-BBBBBB", Status: models.StatusPending},
	}
	token := env.login(t)

	w := env.do(t, http.MethodPut, "/admin/update-status", token, []byte(`{"booking_id":"CMH-AAAAAA","status":"Done"}`))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "Done", env.bookings.bookings[0].Status)
	assert.Equal(t, models.StatusPending, env.bookings.bookings[1].Status)
}

func TestUpdateStatus_MissingFields(t *testing.T) {
	env := setupRouter(t)
	token := env.login(t)

	w := env.do(t, http.MethodPut, "/admin/update-status", token, []byte(`{"booking_id":"CMH-AAAAAA"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Gallery ---

func multipartImage(t *testing.T, fieldName string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(fieldName, "photo.jpg")
	require.NoError(t, err)
	_, err = fw.Write([]byte("fake image bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadImage_Success(t *testing.T) {
	env := setupRouter(t)
	token := env.login(t)

	body, contentType := multipartImage(t, "image")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", token)
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, env.media.uploads)
	require.Len(t, env.gallery.images, 1)
	assert.Equal(t, "charvi_gallery/img", env.gallery.images[0].PublicID)
	assert.NotEmpty(t, env.gallery.images[0].URL)
}

func TestUploadImage_NoFile_MediaNotCalled(t *testing.T) {
	env := setupRouter(t)
	token := env.login(t)

	w := env.do(t, http.MethodPost, "/admin/upload-image", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, env.media.uploads)
	assert.Empty(t, env.gallery.images)
}

func TestUploadImage_WrongFieldName(t *testing.T) {
	env := setupRouter(t)
	token := env.login(t)

	body, contentType := multipartImage(t, "file")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", token)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, env.media.uploads)
}

func TestUploadImage_MediaFailure_NoRecordPersisted(t *testing.T) {
	env := setupRouter(t)
	env.media.uploadErr = errors.New("cloud unreachable")
	token := env.login(t)

	body, contentType := multipartImage(t, "image")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", token)
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "cloud unreachable")
	assert.Empty(t, env.gallery.images)
}

func TestListGallery_Public(t *testing.T) {
	env := setupRouter(t)
	env.gallery.images = []models.GalleryImage{
		{URL: "https://res.example.com/a.jpg", PublicID: "charvi_gallery/a"},
	}

	w := env.do(t, http.MethodGet, "/gallery", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var images []models.GalleryImage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &images))
	require.Len(t, images, 1)
	assert.Equal(t, "charvi_gallery/a", images[0].PublicID)
}

func TestListGallery_Empty_ReturnsArray(t *testing.T) {
	env := setupRouter(t)

	w := env.do(t, http.MethodGet, "/gallery", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeleteImage_RemovesExactlyMatchingRecord(t *testing.T) {
	env := setupRouter(t)
	env.gallery.images = []models.GalleryImage{
		{URL: "https://res.example.com/a.jpg", PublicID: "charvi_gallery/a"},
		{URL: "https://res.example.com/b.jpg", PublicID: "charvi_gallery/b"},
	}
	token := env.login(t)

	w := env.do(t, http.MethodDelete, "/admin/delete-image", token, []byte(`{"public_id":"charvi_gallery/a"}`))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1, env.media.destroys)
	require.Len(t, env.gallery.images, 1)
	assert.Equal(t, "charvi_gallery/b", env.gallery.images[0].PublicID)
}

func TestDeleteImage_UnknownPublicID_LeavesCollectionUnchanged(t *testing.T) {
	env := setupRouter(t)
	env.gallery.images = []models.GalleryImage{
		{URL: "https://res.example.com/a.jpg", PublicID: "charvi_gallery/a"},
	}
	token := env.login(t)

	w := env.do(t, http.MethodDelete, "/admin/delete-image", token, []byte(`{"public_id":"charvi_gallery/zzz"}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, env.gallery.images, 1)
}

func TestDeleteImage_DestroyFailure_KeepsLocalRecord(t *testing.T) {
	env := setupRouter(t)
	env.gallery.images = []models.GalleryImage{
		{URL: "https://res.example.com/a.jpg", PublicID: "charvi_gallery/a"},
	}
	env.media.destroyErr = errors.New("destroy failed")
	token := env.login(t)

	w := env.do(t, http.MethodDelete, "/admin/delete-image", token, []byte(`{"public_id":"charvi_gallery/a"}`))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, env.gallery.images, 1)
}

func TestDeleteImage_MissingPublicID(t *testing.T) {
	env := setupRouter(t)
	token := env.login(t)

	w := env.do(t, http.MethodDelete, "/admin/delete-image", token, []byte(`{"url":"https://res.example.com/a.jpg"}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, env.media.destroys)
}
