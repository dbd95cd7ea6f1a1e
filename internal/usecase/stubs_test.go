package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"travel-booking/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory fakes over the repository interfaces. They implement just
// enough behavior for the service tests.

type stubUserRepo struct {
	users      map[primitive.ObjectID]*entity.User
	increments map[primitive.ObjectID]int
	incErr     error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users:      make(map[primitive.ObjectID]*entity.User),
		increments: make(map[primitive.ObjectID]int),
	}
}

func (s *stubUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users[user.ID] = user
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	return s.users[id], nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

func (s *stubUserRepo) Update(_ context.Context, id primitive.ObjectID, update bson.M) (*entity.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	if v, ok := update["name"]; ok {
		u.Name = v.(string)
	}
	if v, ok := update["role"]; ok {
		u.Role = entity.UserRole(v.(string))
	}
	if v, ok := update["status"]; ok {
		u.Status = entity.UserStatus(v.(string))
	}
	return u, nil
}

func (s *stubUserRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.users[id]; !ok {
		return fmt.Errorf("user %s not found", id.Hex())
	}
	delete(s.users, id)
	return nil
}

func (s *stubUserRepo) IncrementRewardPoints(_ context.Context, id primitive.ObjectID, delta int) error {
	if s.incErr != nil {
		return s.incErr
	}
	s.increments[id] += delta
	if u, ok := s.users[id]; ok {
		u.RewardPoints += delta
	}
	return nil
}

type stubPackageRepo struct {
	packages []*entity.Package
}

func (s *stubPackageRepo) Create(_ context.Context, pkg *entity.Package) error {
	if pkg.ID.IsZero() {
		pkg.ID = primitive.NewObjectID()
	}
	s.packages = append(s.packages, pkg)
	return nil
}

func (s *stubPackageRepo) FindAll(_ context.Context) ([]*entity.Package, error) {
	return s.packages, nil
}

func (s *stubPackageRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Package, error) {
	for _, p := range s.packages {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubPackageRepo) FindByType(_ context.Context, pkgType string) ([]*entity.Package, error) {
	var out []*entity.Package
	for _, p := range s.packages {
		if strings.EqualFold(string(p.Type), pkgType) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPackageRepo) FindByCategory(_ context.Context, categoryID primitive.ObjectID) ([]*entity.Package, error) {
	var out []*entity.Package
	for _, p := range s.packages {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPackageRepo) FindHome(_ context.Context) ([]*entity.Package, error) {
	var out []*entity.Package
	for _, p := range s.packages {
		if p.ShowOnHome {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubPackageRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*entity.Package, error) {
	var out []*entity.Package
	for _, p := range s.packages {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (s *stubPackageRepo) Update(_ context.Context, id primitive.ObjectID, update bson.M) (*entity.Package, error) {
	for _, p := range s.packages {
		if p.ID == id {
			if v, ok := update["title"]; ok {
				p.Title = v.(string)
			}
			if v, ok := update["price"]; ok {
				p.Price = v.(float64)
			}
			return p, nil
		}
	}
	return nil, nil
}

func (s *stubPackageRepo) Delete(_ context.Context, id primitive.ObjectID) (*entity.Package, error) {
	for i, p := range s.packages {
		if p.ID == id {
			s.packages = append(s.packages[:i], s.packages[i+1:]...)
			return p, nil
		}
	}
	return nil, nil
}

type stubCategoryRepo struct {
	categories map[primitive.ObjectID]*entity.Category
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[primitive.ObjectID]*entity.Category)}
}

func (s *stubCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	s.categories[category.ID] = category
	return nil
}

func (s *stubCategoryRepo) FindAll(_ context.Context) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range s.categories {
		out = append(out, c)
	}
	return out, nil
}

func (s *stubCategoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Category, error) {
	return s.categories[id], nil
}

func (s *stubCategoryRepo) Update(_ context.Context, id primitive.ObjectID, update bson.M) (*entity.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	if v, ok := update["title"]; ok {
		c.Title = v.(string)
	}
	if v, ok := update["image"]; ok {
		c.Image = v.(string)
	}
	return c, nil
}

func (s *stubCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) (*entity.Category, error) {
	c, ok := s.categories[id]
	if !ok {
		return nil, nil
	}
	delete(s.categories, id)
	return c, nil
}

type stubBookingRepo struct {
	bookings []*entity.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	s.bookings = append(s.bookings, booking)
	return nil
}

func (s *stubBookingRepo) FindAll(_ context.Context) ([]*entity.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (s *stubBookingRepo) Update(_ context.Context, id primitive.ObjectID, update bson.M) (*entity.Booking, error) {
	for _, b := range s.bookings {
		if b.ID == id {
			if v, ok := update["booking_status"]; ok {
				b.BookingStatus = entity.BookingStatus(v.(string))
			}
			if v, ok := update["payment_status"]; ok {
				b.PaymentStatus = entity.PaymentStatus(v.(string))
			}
			return b, nil
		}
	}
	return nil, nil
}

type stubDetailRepo struct {
	details []*entity.PackageDetail
	dupErr  error
}

func (s *stubDetailRepo) InsertMany(_ context.Context, details []*entity.PackageDetail) error {
	if s.dupErr != nil {
		return s.dupErr
	}
	for _, d := range details {
		if d.ID.IsZero() {
			d.ID = primitive.NewObjectID()
		}
		s.details = append(s.details, d)
	}
	return nil
}

func (s *stubDetailRepo) FindPage(_ context.Context, packageID *primitive.ObjectID, limit, skip int) ([]*entity.PackageDetail, int64, error) {
	var matched []*entity.PackageDetail
	for _, d := range s.details {
		if packageID == nil || d.PackageID == *packageID {
			matched = append(matched, d)
		}
	}
	total := int64(len(matched))
	if skip >= len(matched) {
		return nil, total, nil
	}
	matched = matched[skip:]
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (s *stubDetailRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.PackageDetail, error) {
	for _, d := range s.details {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (s *stubDetailRepo) FindByPackageID(_ context.Context, packageID primitive.ObjectID) ([]*entity.PackageDetail, error) {
	var out []*entity.PackageDetail
	for _, d := range s.details {
		if d.PackageID == packageID {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Position < out[j].Position
	})
	return out, nil
}

func (s *stubDetailRepo) CountByPackageID(_ context.Context, packageID primitive.ObjectID) (int64, error) {
	var n int64
	for _, d := range s.details {
		if d.PackageID == packageID {
			n++
		}
	}
	return n, nil
}

func (s *stubDetailRepo) Update(_ context.Context, id primitive.ObjectID, update bson.M) (*entity.PackageDetail, error) {
	for _, d := range s.details {
		if d.ID == id {
			if v, ok := update["image_name"]; ok {
				d.ImageName = v.(string)
			}
			if v, ok := update["rating"]; ok {
				d.Rating = v.(float64)
			}
			return d, nil
		}
	}
	return nil, nil
}

func (s *stubDetailRepo) Delete(_ context.Context, id primitive.ObjectID) (*entity.PackageDetail, error) {
	for i, d := range s.details {
		if d.ID == id {
			s.details = append(s.details[:i], s.details[i+1:]...)
			return d, nil
		}
	}
	return nil, nil
}

type stubRewardRepo struct {
	rewards []*entity.Reward
}

func (s *stubRewardRepo) Create(_ context.Context, reward *entity.Reward) error {
	if reward.ID.IsZero() {
		reward.ID = primitive.NewObjectID()
	}
	s.rewards = append(s.rewards, reward)
	return nil
}

func (s *stubRewardRepo) FindAll(_ context.Context) ([]*entity.Reward, error) {
	return s.rewards, nil
}

type stubDealRepo struct {
	deals []*entity.Deal
}

func (s *stubDealRepo) Create(_ context.Context, deal *entity.Deal) error {
	if deal.ID.IsZero() {
		deal.ID = primitive.NewObjectID()
	}
	s.deals = append(s.deals, deal)
	return nil
}

func (s *stubDealRepo) FindAll(_ context.Context) ([]*entity.Deal, error) {
	return s.deals, nil
}

func (s *stubDealRepo) FindActiveByCode(_ context.Context, code string, now time.Time) (*entity.Deal, error) {
	for _, d := range s.deals {
		if d.Code == code && d.Status == entity.DealStatusActive &&
			!now.Before(d.ValidFrom) && !now.After(d.ValidTo) {
			return d, nil
		}
	}
	return nil, nil
}
