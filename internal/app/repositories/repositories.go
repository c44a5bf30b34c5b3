package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	CategoryRepository    *CategoryRepository
	SubCategoryRepository *SubCategoryRepository
	NoteRepository        *NoteRepository
	WebinarRepository     *WebinarRepository
	ContactRepository     *ContactRepository
	StatsRepository       *StatsRepository
}

// NewRepositories creates the repository container over a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		CategoryRepository:    NewCategoryRepository(db),
		SubCategoryRepository: NewSubCategoryRepository(db),
		NoteRepository:        NewNoteRepository(db),
		WebinarRepository:     NewWebinarRepository(db),
		ContactRepository:     NewContactRepository(db),
		StatsRepository:       NewStatsRepository(db),
	}
}
