package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// fakeUserRepo is an in-memory UserRepository for use case tests.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domainerror.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]*entity.User, error) {
	users := make([]*entity.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range r.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// fakeCategoryRepo is an in-memory CategoryRepository for use case tests.
type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	return category, nil
}

func (r *fakeCategoryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Category, error) {
	var categories []*entity.Category
	for _, category := range r.categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	return categories, nil
}

func (r *fakeCategoryRepo) ExistsByNameAndUser(_ context.Context, name string, userID uuid.UUID) (bool, error) {
	for _, category := range r.categories {
		if category.UserID == userID && category.Name == name {
			return true, nil
		}
	}
	return false, nil
}

// fakeTransactionRepo is an in-memory TransactionRepository for use case
// tests. It records primitive calls so tests can assert what was (not)
// touched.
type fakeTransactionRepo struct {
	transactions map[uuid.UUID]*entity.Transaction
	categories   *fakeCategoryRepo

	createCalls    int
	updateCalls    int
	deleteCalls    int
	dateRangeCalls int
}

func newFakeTransactionRepo(categories *fakeCategoryRepo, transactions ...*entity.Transaction) *fakeTransactionRepo {
	repo := &fakeTransactionRepo{
		transactions: make(map[uuid.UUID]*entity.Transaction),
		categories:   categories,
	}
	for _, trx := range transactions {
		repo.transactions[trx.ID] = trx
	}
	return repo
}

func (r *fakeTransactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.createCalls++
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	transaction, ok := r.transactions[id]
	if !ok {
		return nil, domainerror.ErrTransactionNotFound
	}
	return transaction, nil
}

func (r *fakeTransactionRepo) FindByIDWithCategory(ctx context.Context, id uuid.UUID) (*entity.TransactionWithCategory, error) {
	transaction, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.TransactionWithCategory{
		Transaction: transaction,
		Category:    r.categoryFor(transaction),
	}, nil
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.TransactionWithCategory, error) {
	var results []*entity.TransactionWithCategory
	for _, trx := range r.transactions {
		if trx.UserID == userID {
			results = append(results, &entity.TransactionWithCategory{
				Transaction: trx,
				Category:    r.categoryFor(trx),
			})
		}
	}
	return results, nil
}

func (r *fakeTransactionRepo) FindByCategory(_ context.Context, categoryID uuid.UUID) ([]*entity.TransactionWithCategory, error) {
	var results []*entity.TransactionWithCategory
	for _, trx := range r.transactions {
		if trx.CategoryID == categoryID {
			results = append(results, &entity.TransactionWithCategory{
				Transaction: trx,
				Category:    r.categoryFor(trx),
			})
		}
	}
	return results, nil
}

func (r *fakeTransactionRepo) FindByUserAndDateRange(_ context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	r.dateRangeCalls++
	var results []*entity.Transaction
	for _, trx := range r.transactions {
		if trx.UserID == userID && !trx.TrxDate.Before(start) && !trx.TrxDate.After(end) {
			results = append(results, trx)
		}
	}
	return results, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, transaction *entity.Transaction) error {
	r.updateCalls++
	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleteCalls++
	delete(r.transactions, id)
	return nil
}

func (r *fakeTransactionRepo) categoryFor(trx *entity.Transaction) *entity.Category {
	if r.categories == nil {
		return nil
	}
	return r.categories.categories[trx.CategoryID]
}
