package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"clero/internal/models/db_models"
	"clero/internal/repositories"
)

// In-memory fakes for the repository interfaces. They reproduce the
// contracts the real gorm repositories follow: nil-on-missing reads,
// guarded one-shot transitions, all-or-nothing paired writes.

type fakeStore struct {
	accounts    map[uuid.UUID]*db_models.Account
	priests     map[uuid.UUID]*db_models.Priest
	suggestions map[uuid.UUID]*db_models.ProfileSuggestion
	cities      map[uuid.UUID]*db_models.City
	parishes    map[uuid.UUID]*db_models.Parish
	specialties map[uuid.UUID]*db_models.Specialty

	failNextWrite error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:    make(map[uuid.UUID]*db_models.Account),
		priests:     make(map[uuid.UUID]*db_models.Priest),
		suggestions: make(map[uuid.UUID]*db_models.ProfileSuggestion),
		cities:      make(map[uuid.UUID]*db_models.City),
		parishes:    make(map[uuid.UUID]*db_models.Parish),
		specialties: make(map[uuid.UUID]*db_models.Specialty),
	}
}

func (s *fakeStore) consumeWriteError() error {
	err := s.failNextWrite
	s.failNextWrite = nil
	return err
}

// --- accounts ---

type fakeAccountRepo struct{ store *fakeStore }

func (f *fakeAccountRepo) Insert(ctx context.Context, account *db_models.Account) error {
	if err := f.store.consumeWriteError(); err != nil {
		return err
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	f.store.accounts[account.ID] = account
	return nil
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Account, error) {
	account, ok := f.store.accounts[id]
	if !ok {
		return nil, nil
	}
	for _, priest := range f.store.priests {
		if priest.AccountID == id {
			account.Priest = priest
			break
		}
	}
	return account, nil
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	for _, account := range f.store.accounts {
		if account.Email == email {
			return f.FindByID(ctx, account.ID)
		}
	}
	return nil, nil
}

// --- priests ---

type fakePriestRepo struct{ store *fakeStore }

func (f *fakePriestRepo) CreateWithAccount(ctx context.Context, account *db_models.Account, priest *db_models.Priest, specialtyIDs []uuid.UUID) error {
	if err := f.store.consumeWriteError(); err != nil {
		return err
	}

	specialties := make([]db_models.Specialty, 0, len(specialtyIDs))
	for _, id := range specialtyIDs {
		specialty, ok := f.store.specialties[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		specialties = append(specialties, *specialty)
	}

	account.ID = uuid.New()
	priest.ID = uuid.New()
	priest.AccountID = account.ID
	priest.Specialties = specialties
	f.store.accounts[account.ID] = account
	f.store.priests[priest.ID] = priest
	return nil
}

func (f *fakePriestRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Priest, error) {
	priest, ok := f.store.priests[id]
	if !ok {
		return nil, nil
	}
	priest.Account = f.store.accounts[priest.AccountID]
	if priest.ParishID != nil {
		priest.Parish = f.store.parishes[*priest.ParishID]
	}
	return priest, nil
}

func (f *fakePriestRepo) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*db_models.Priest, error) {
	for _, priest := range f.store.priests {
		if priest.AccountID == accountID {
			return f.FindByID(ctx, priest.ID)
		}
	}
	return nil, nil
}

func (f *fakePriestRepo) ListByStatus(ctx context.Context, status string) ([]db_models.Priest, error) {
	var priests []db_models.Priest
	for _, priest := range f.store.priests {
		if priest.Status == status {
			priests = append(priests, *priest)
		}
	}
	return priests, nil
}

func (f *fakePriestRepo) Decide(ctx context.Context, priestID uuid.UUID, accountID uuid.UUID, approve bool, adminID uuid.UUID) (bool, error) {
	if err := f.store.consumeWriteError(); err != nil {
		return false, err
	}

	priest, ok := f.store.priests[priestID]
	if !ok || priest.Status != db_models.StatusPending {
		return false, nil
	}

	if approve {
		now := time.Now()
		priest.Status = db_models.StatusApproved
		priest.ApprovedAt = &now
		priest.ApprovedByAccountID = &adminID
		if account, ok := f.store.accounts[accountID]; ok {
			account.Role = db_models.RolePriest
		}
	} else {
		priest.Status = db_models.StatusRejected
		priest.ApprovedAt = nil
		priest.ApprovedByAccountID = nil
	}
	return true, nil
}

func (f *fakePriestRepo) Update(ctx context.Context, priest *db_models.Priest, specialtyIDs []uuid.UUID) error {
	if err := f.store.consumeWriteError(); err != nil {
		return err
	}

	specialties := make([]db_models.Specialty, 0, len(specialtyIDs))
	for _, id := range specialtyIDs {
		specialty, ok := f.store.specialties[id]
		if !ok {
			return gorm.ErrRecordNotFound
		}
		specialties = append(specialties, *specialty)
	}
	priest.Specialties = specialties
	f.store.priests[priest.ID] = priest
	return nil
}

func (f *fakePriestRepo) SetProfileImageURL(ctx context.Context, priestID uuid.UUID, url string) error {
	priest, ok := f.store.priests[priestID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	priest.ProfileImageURL = url
	return nil
}

// --- suggestions ---

type fakeSuggestionRepo struct{ store *fakeStore }

func (f *fakeSuggestionRepo) Insert(ctx context.Context, suggestion *db_models.ProfileSuggestion) error {
	if err := f.store.consumeWriteError(); err != nil {
		return err
	}
	suggestion.ID = uuid.New()
	suggestion.CreatedAt = time.Now().Unix()
	f.store.suggestions[suggestion.ID] = suggestion
	return nil
}

func (f *fakeSuggestionRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.ProfileSuggestion, error) {
	suggestion, ok := f.store.suggestions[id]
	if !ok {
		return nil, nil
	}
	suggestion.Priest = f.store.priests[suggestion.PriestID]
	return suggestion, nil
}

func (f *fakeSuggestionRepo) ListByStatus(ctx context.Context, status string) ([]db_models.ProfileSuggestion, error) {
	var suggestions []db_models.ProfileSuggestion
	for _, suggestion := range f.store.suggestions {
		if suggestion.Status == status {
			suggestions = append(suggestions, *suggestion)
		}
	}
	return suggestions, nil
}

func (f *fakeSuggestionRepo) ListByPriest(ctx context.Context, priestID uuid.UUID) ([]db_models.ProfileSuggestion, error) {
	var suggestions []db_models.ProfileSuggestion
	for _, suggestion := range f.store.suggestions {
		if suggestion.PriestID == priestID {
			suggestions = append(suggestions, *suggestion)
		}
	}
	return suggestions, nil
}

func (f *fakeSuggestionRepo) Reject(ctx context.Context, id uuid.UUID, adminID uuid.UUID) (bool, error) {
	if err := f.store.consumeWriteError(); err != nil {
		return false, err
	}
	suggestion, ok := f.store.suggestions[id]
	if !ok || suggestion.Status != db_models.StatusPending {
		return false, nil
	}
	now := time.Now()
	suggestion.Status = db_models.StatusRejected
	suggestion.ReviewedByAccountID = &adminID
	suggestion.ReviewedAt = &now
	return true, nil
}

func (f *fakeSuggestionRepo) ApproveWithFieldWrite(ctx context.Context, id uuid.UUID, priestID uuid.UUID, column string, value string, adminID uuid.UUID) (bool, error) {
	if err := f.store.consumeWriteError(); err != nil {
		return false, err
	}
	suggestion, ok := f.store.suggestions[id]
	if !ok || suggestion.Status != db_models.StatusPending {
		return false, nil
	}

	priest, ok := f.store.priests[priestID]
	if !ok {
		return false, gorm.ErrRecordNotFound
	}

	switch column {
	case "first_name":
		priest.FirstName = value
	case "last_name":
		priest.LastName = value
	case "phone":
		priest.Phone = value
	case "biography":
		priest.Biography = value
	case "profile_image_url":
		priest.ProfileImageURL = value
	default:
		return false, errors.New("unknown column " + column)
	}

	now := time.Now()
	suggestion.Status = db_models.StatusApproved
	suggestion.ReviewedByAccountID = &adminID
	suggestion.ReviewedAt = &now
	return true, nil
}

// --- cities ---

type fakeCityRepo struct{ store *fakeStore }

func (f *fakeCityRepo) Insert(ctx context.Context, city *db_models.City) error {
	if err := f.store.consumeWriteError(); err != nil {
		return err
	}
	city.ID = uuid.New()
	f.store.cities[city.ID] = city
	return nil
}

func (f *fakeCityRepo) Update(ctx context.Context, city *db_models.City) error {
	f.store.cities[city.ID] = city
	return nil
}

func (f *fakeCityRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.cities, id)
	return nil
}

func (f *fakeCityRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.City, error) {
	city, ok := f.store.cities[id]
	if !ok {
		return nil, nil
	}
	return city, nil
}

func (f *fakeCityRepo) List(ctx context.Context) ([]db_models.City, error) {
	var cities []db_models.City
	for _, city := range f.store.cities {
		cities = append(cities, *city)
	}
	return cities, nil
}

func (f *fakeCityRepo) CountByName(ctx context.Context, name string, excludeID uuid.UUID) (int64, error) {
	var count int64
	for _, city := range f.store.cities {
		if city.Name == name && city.ID != excludeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCityRepo) CountParishes(ctx context.Context, cityID uuid.UUID) (int64, error) {
	var count int64
	for _, parish := range f.store.parishes {
		if parish.CityID == cityID {
			count++
		}
	}
	return count, nil
}

// --- parishes ---

type fakeParishRepo struct{ store *fakeStore }

func (f *fakeParishRepo) Insert(ctx context.Context, parish *db_models.Parish) error {
	if err := f.store.consumeWriteError(); err != nil {
		return err
	}
	parish.ID = uuid.New()
	f.store.parishes[parish.ID] = parish
	return nil
}

func (f *fakeParishRepo) Update(ctx context.Context, parish *db_models.Parish) error {
	f.store.parishes[parish.ID] = parish
	return nil
}

func (f *fakeParishRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.parishes, id)
	return nil
}

func (f *fakeParishRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Parish, error) {
	parish, ok := f.store.parishes[id]
	if !ok {
		return nil, nil
	}
	parish.City = f.store.cities[parish.CityID]
	return parish, nil
}

func (f *fakeParishRepo) List(ctx context.Context) ([]db_models.Parish, error) {
	var parishes []db_models.Parish
	for _, parish := range f.store.parishes {
		parishes = append(parishes, *parish)
	}
	return parishes, nil
}

func (f *fakeParishRepo) CountByNameInCity(ctx context.Context, name string, cityID uuid.UUID, excludeID uuid.UUID) (int64, error) {
	var count int64
	for _, parish := range f.store.parishes {
		if parish.Name == name && parish.CityID == cityID && parish.ID != excludeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeParishRepo) CountPriests(ctx context.Context, parishID uuid.UUID) (int64, error) {
	var count int64
	for _, priest := range f.store.priests {
		if priest.ParishID != nil && *priest.ParishID == parishID {
			count++
		}
	}
	return count, nil
}

// --- specialties ---

type fakeSpecialtyRepo struct{ store *fakeStore }

func (f *fakeSpecialtyRepo) Insert(ctx context.Context, specialty *db_models.Specialty) error {
	if err := f.store.consumeWriteError(); err != nil {
		return err
	}
	specialty.ID = uuid.New()
	f.store.specialties[specialty.ID] = specialty
	return nil
}

func (f *fakeSpecialtyRepo) Update(ctx context.Context, specialty *db_models.Specialty) error {
	f.store.specialties[specialty.ID] = specialty
	return nil
}

func (f *fakeSpecialtyRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.store.specialties, id)
	return nil
}

func (f *fakeSpecialtyRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Specialty, error) {
	specialty, ok := f.store.specialties[id]
	if !ok {
		return nil, nil
	}
	return specialty, nil
}

func (f *fakeSpecialtyRepo) List(ctx context.Context) ([]db_models.Specialty, error) {
	var specialties []db_models.Specialty
	for _, specialty := range f.store.specialties {
		specialties = append(specialties, *specialty)
	}
	return specialties, nil
}

func (f *fakeSpecialtyRepo) CountByName(ctx context.Context, name string, excludeID uuid.UUID) (int64, error) {
	var count int64
	for _, specialty := range f.store.specialties {
		if specialty.Name == name && specialty.ID != excludeID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSpecialtyRepo) CountLinkedPriests(ctx context.Context, specialtyID uuid.UUID) (int64, error) {
	var count int64
	for _, priest := range f.store.priests {
		for _, specialty := range priest.Specialties {
			if specialty.ID == specialtyID {
				count++
			}
		}
	}
	return count, nil
}

// --- directory ---

type fakeDirectoryRepo struct{ store *fakeStore }

func (f *fakeDirectoryRepo) ListApproved(ctx context.Context) ([]db_models.Priest, error) {
	var priests []db_models.Priest
	for _, priest := range f.store.priests {
		if priest.Status != db_models.StatusApproved {
			continue
		}
		copied := *priest
		copied.Account = f.store.accounts[priest.AccountID]
		if priest.ParishID != nil {
			copied.Parish = f.store.parishes[*priest.ParishID]
		}
		priests = append(priests, copied)
	}
	return priests, nil
}

func (f *fakeDirectoryRepo) SearchApproved(ctx context.Context, filter repositories.DirectoryFilter) ([]db_models.Priest, error) {
	priests, _ := f.ListApproved(ctx)
	if filter.Limit > 0 && len(priests) > filter.Limit {
		priests = priests[:filter.Limit]
	}
	return priests, nil
}

func (f *fakeDirectoryRepo) ParishesWithApprovedPriests(ctx context.Context) ([]db_models.Parish, error) {
	seen := make(map[uuid.UUID]bool)
	var parishes []db_models.Parish
	for _, priest := range f.store.priests {
		if priest.Status != db_models.StatusApproved || priest.ParishID == nil || seen[*priest.ParishID] {
			continue
		}
		if parish, ok := f.store.parishes[*priest.ParishID]; ok {
			seen[parish.ID] = true
			parishes = append(parishes, *parish)
		}
	}
	return parishes, nil
}

// --- image uploads ---

type fakeUploader struct {
	url     string
	err     error
	uploads int
}

func (f *fakeUploader) Upload(ownerID string, filename string, data []byte) (string, error) {
	f.uploads++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func mustParse(t interface{ Fatalf(string, ...interface{}) }, value string) uuid.UUID {
	id, err := uuid.Parse(value)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", value, err)
	}
	return id
}
