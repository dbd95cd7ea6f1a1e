package adaptor

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"travel-booking/internal/data/entity"
	"travel-booking/internal/dto/request"
	"travel-booking/internal/dto/response"
	"travel-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeDetailService struct {
	req        *request.CreatePackageDetailRequest
	mainImage  string
	images     []string
	listFilter string
}

func (f *fakeDetailService) CreatePackageDetails(_ context.Context, req *request.CreatePackageDetailRequest, mainImage string, images []string) ([]*entity.PackageDetail, error) {
	f.req = req
	f.mainImage = mainImage
	f.images = images
	return []*entity.PackageDetail{}, nil
}

func (f *fakeDetailService) GetPackageDetails(_ context.Context, _, _ int, packageID string) (*response.PaginatedDetailsResponse, error) {
	f.listFilter = packageID
	return &response.PaginatedDetailsResponse{}, nil
}

func (f *fakeDetailService) GetPackageDetailByID(context.Context, string) (*entity.PackageDetail, error) {
	return nil, nil
}

func (f *fakeDetailService) GetDetailsGroupedByPackage(context.Context, string) (response.GroupedDetailsResponse, error) {
	return nil, nil
}

func (f *fakeDetailService) UpdatePackageDetail(context.Context, string, *request.UpdatePackageDetailRequest, string) (*entity.PackageDetail, error) {
	return nil, nil
}

func (f *fakeDetailService) DeletePackageDetail(context.Context, string) error { return nil }

func detailTestConfig(t *testing.T) *utils.Config {
	t.Helper()
	return &utils.Config{Upload: utils.UploadConfig{Dir: t.TempDir(), MaxSizeMB: 5}}
}

func buildDetailForm(t *testing.T, days string, imageFiles int, withMain bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	require.NoError(t, w.WriteField("packageID", "64b6a0f0a0a0a0a0a0a0a0a0"))
	if days != "" {
		require.NoError(t, w.WriteField("days", days))
	}

	if withMain {
		fw, err := w.CreateFormFile("mainImage", "main.jpg")
		require.NoError(t, err)
		_, err = io.WriteString(fw, "jpeg-bytes")
		require.NoError(t, err)
	}

	for i := 0; i < imageFiles; i++ {
		fw, err := w.CreateFormFile("images", "detail.jpg")
		require.NoError(t, err)
		_, err = io.WriteString(fw, "jpeg-bytes")
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCreatePackageDetailsMultipart(t *testing.T) {
	svc := &fakeDetailService{}
	h := NewPackageDetailHandler(svc, detailTestConfig(t), zap.NewNop())

	days := `[{"dayNumber":1,"images":[{"imageName":"Fort"},{"touristPlace":"Beach"}]}]`
	body, contentType := buildDetailForm(t, days, 2, true)

	req := httptest.NewRequest(http.MethodPost, "/api/package-details", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.CreatePackageDetails(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.req)
	assert.Equal(t, "64b6a0f0a0a0a0a0a0a0a0a0", svc.req.PackageID)
	require.Len(t, svc.req.Days, 1)
	assert.Len(t, svc.req.Days[0].Images, 2)
	assert.NotEmpty(t, svc.mainImage)
	assert.Len(t, svc.images, 2)
}

func TestGetPackageDetailsForwardsPackageIDParam(t *testing.T) {
	svc := &fakeDetailService{}
	h := NewPackageDetailHandler(svc, detailTestConfig(t), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/package-details?packageID=64b6a0f0a0a0a0a0a0a0a0a0", nil)
	rec := httptest.NewRecorder()

	h.GetPackageDetails(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "64b6a0f0a0a0a0a0a0a0a0a0", svc.listFilter)
}

func TestCreatePackageDetailsMissingDays(t *testing.T) {
	h := NewPackageDetailHandler(&fakeDetailService{}, detailTestConfig(t), zap.NewNop())

	body, contentType := buildDetailForm(t, "", 0, false)
	req := httptest.NewRequest(http.MethodPost, "/api/package-details", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.CreatePackageDetails(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePackageDetailsMalformedDays(t *testing.T) {
	h := NewPackageDetailHandler(&fakeDetailService{}, detailTestConfig(t), zap.NewNop())

	body, contentType := buildDetailForm(t, "{not-an-array", 0, false)
	req := httptest.NewRequest(http.MethodPost, "/api/package-details", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.CreatePackageDetails(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
