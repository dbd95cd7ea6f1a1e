package usecase

import (
	"context"
	"testing"

	"travel-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newDetailService(details *stubDetailRepo) PackageDetailService {
	return NewPackageDetailService(details, testConfig(), zap.NewNop())
}

func detailCreateRequest(packageID string) *request.CreatePackageDetailRequest {
	return &request.CreatePackageDetailRequest{
		PackageID: packageID,
		Days: []request.DayInput{
			{DayNumber: 1, Images: []request.ImageInput{
				{ImageName: "Fort", TouristPlace: "Aguada", Rating: 4.5},
				{TouristPlace: "Baga Beach"},
			}},
			{DayNumber: 2, Images: []request.ImageInput{
				{ImageName: "Spice Farm", Review: 12},
			}},
		},
	}
}

func TestCreatePackageDetailsFlattens(t *testing.T) {
	repo := &stubDetailRepo{}
	svc := newDetailService(repo)
	packageID := primitive.NewObjectID()

	docs, err := svc.CreatePackageDetails(context.Background(),
		detailCreateRequest(packageID.Hex()),
		"main.jpg",
		[]string{"a.jpg", "b.jpg", "c.jpg"})
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// One record per image, files consumed in day-then-image order.
	assert.Equal(t, 1, docs[0].Day)
	assert.Equal(t, 0, docs[0].Position)
	assert.Equal(t, "a.jpg", docs[0].Image)
	assert.Equal(t, "Fort", docs[0].ImageName)
	assert.Equal(t, 4.5, docs[0].Rating)

	assert.Equal(t, 1, docs[1].Day)
	assert.Equal(t, 1, docs[1].Position)
	assert.Equal(t, "b.jpg", docs[1].Image)
	// Name defaults when the payload omits it.
	assert.Equal(t, "Image 2", docs[1].ImageName)
	assert.Zero(t, docs[1].Rating)

	assert.Equal(t, 2, docs[2].Day)
	assert.Equal(t, 0, docs[2].Position)
	assert.Equal(t, "c.jpg", docs[2].Image)
	assert.Equal(t, 12, docs[2].Review)

	for _, doc := range docs {
		assert.Equal(t, packageID, doc.PackageID)
		assert.Equal(t, "main.jpg", doc.MainImage)
	}
}

func TestCreatePackageDetailsFewerFilesThanImages(t *testing.T) {
	svc := newDetailService(&stubDetailRepo{})
	packageID := primitive.NewObjectID().Hex()

	docs, err := svc.CreatePackageDetails(context.Background(),
		detailCreateRequest(packageID), "", []string{"only.jpg"})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "only.jpg", docs[0].Image)
	assert.Empty(t, docs[1].Image)
	assert.Empty(t, docs[2].Image)
}

func TestCreatePackageDetailsDuplicate(t *testing.T) {
	repo := &stubDetailRepo{}
	svc := newDetailService(repo)
	packageID := primitive.NewObjectID().Hex()

	_, err := svc.CreatePackageDetails(context.Background(),
		detailCreateRequest(packageID), "", nil)
	require.NoError(t, err)

	_, err = svc.CreatePackageDetails(context.Background(),
		detailCreateRequest(packageID), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exist")
}

func TestCreatePackageDetailsNoImages(t *testing.T) {
	svc := newDetailService(&stubDetailRepo{})

	_, err := svc.CreatePackageDetails(context.Background(), &request.CreatePackageDetailRequest{
		PackageID: primitive.NewObjectID().Hex(),
		Days:      []request.DayInput{{DayNumber: 1}},
	}, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestCreatePackageDetailsInvalidPackageID(t *testing.T) {
	svc := newDetailService(&stubDetailRepo{})

	_, err := svc.CreatePackageDetails(context.Background(),
		detailCreateRequest("nope"), "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid package ID format")
}

func TestGetDetailsGroupedByPackage(t *testing.T) {
	repo := &stubDetailRepo{}
	svc := newDetailService(repo)
	packageID := primitive.NewObjectID()

	_, err := svc.CreatePackageDetails(context.Background(),
		detailCreateRequest(packageID.Hex()), "", nil)
	require.NoError(t, err)

	grouped, err := svc.GetDetailsGroupedByPackage(context.Background(), packageID.Hex())
	require.NoError(t, err)
	require.Len(t, grouped, 2)
	require.Len(t, grouped[1], 2)
	require.Len(t, grouped[2], 1)
	// Insertion order within a day survives grouping.
	assert.Equal(t, "Fort", grouped[1][0].ImageName)
	assert.Equal(t, "Image 2", grouped[1][1].ImageName)
}

func TestGetDetailsGroupedEmpty(t *testing.T) {
	svc := newDetailService(&stubDetailRepo{})

	_, err := svc.GetDetailsGroupedByPackage(context.Background(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetPackageDetailsPagination(t *testing.T) {
	repo := &stubDetailRepo{}
	svc := newDetailService(repo)
	packageID := primitive.NewObjectID()

	_, err := svc.CreatePackageDetails(context.Background(),
		detailCreateRequest(packageID.Hex()), "", nil)
	require.NoError(t, err)

	page, err := svc.GetPackageDetails(context.Background(), 1, 2, packageID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Len(t, page.Data, 2)

	page, err = svc.GetPackageDetails(context.Background(), 2, 2, packageID.Hex())
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
}
