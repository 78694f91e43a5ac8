// Package seed provides helpers to create demo data for development.
// Not intended for production databases.
package seed

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"devconnect/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder.
type Options struct {
	NumUsers    int
	NumProjects int
	ShouldClean bool
}

var skillPool = []string{
	"Go", "Python", "TypeScript", "JavaScript", "Rust", "Java", "C++",
	"React", "Vue", "Svelte", "Node.js", "Django", "Flask", "Fiber",
	"PostgreSQL", "MongoDB", "Redis", "Docker", "Kubernetes", "Terraform",
	"AWS", "GCP", "GraphQL", "gRPC", "Machine Learning", "DevOps",
}

var tagPool = []string{
	"web", "cli", "api", "frontend", "backend", "mobile", "devtools",
	"data", "ai", "game", "security", "infra", "open-source",
}

// Seeder creates demo data through the raw gorm handle.
type Seeder struct {
	db  *gorm.DB
	rnd *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Seeder{db: db, rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// ClearAll removes all seeded data. Table order respects foreign keys.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, table := range []string{"messages", "conversations", "stars", "follows", "projects", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// Run populates the database with users, a follow mesh, projects with
// stars, and a handful of conversations.
func (s *Seeder) Run(ctx context.Context, opts Options) error {
	log.Printf("Seeding %d users and %d projects...", opts.NumUsers, opts.NumProjects)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	users, err := s.createUsers(ctx, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("creating users: %w", err)
	}
	log.Printf("Created %d users", len(users))

	if err := s.createFollowMesh(ctx, users); err != nil {
		return fmt.Errorf("creating follow mesh: %w", err)
	}

	projects, err := s.createProjects(ctx, users, opts.NumProjects)
	if err != nil {
		return fmt.Errorf("creating projects: %w", err)
	}
	log.Printf("Created %d projects", len(projects))

	if err := s.createStars(ctx, users, projects); err != nil {
		return fmt.Errorf("creating stars: %w", err)
	}

	if err := s.createConversations(ctx, users); err != nil {
		return fmt.Errorf("creating conversations: %w", err)
	}

	log.Println("Seeding complete. All users have the password: Password123")
	return nil
}

func (s *Seeder) pickSkills() []string {
	n := 2 + s.rnd.Intn(5)
	picked := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(picked) < n {
		skill := skillPool[s.rnd.Intn(len(skillPool))]
		if !seen[skill] {
			seen[skill] = true
			picked = append(picked, skill)
		}
	}
	return picked
}

func (s *Seeder) pickTags() []string {
	n := 1 + s.rnd.Intn(3)
	picked := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(picked) < n {
		tag := tagPool[s.rnd.Intn(len(tagPool))]
		if !seen[tag] {
			seen[tag] = true
			picked = append(picked, tag)
		}
	}
	return picked
}

func (s *Seeder) createUsers(ctx context.Context, count int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("Password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		username := strings.ToLower(fmt.Sprintf("%s_%s%d", first, last, i))

		user := models.User{
			FullName:  first + " " + last,
			Username:  username,
			Email:     fmt.Sprintf("%s@example.com", username),
			Password:  string(hashed),
			Bio:       gofakeit.Sentence(8),
			Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username),
			Skills:    s.pickSkills(),
			GithubURL: fmt.Sprintf("https://github.com/%s", username),
			Location:  gofakeit.City(),
			IsActive:  true,
			JoinedAt:  time.Now().UTC().AddDate(0, 0, -s.rnd.Intn(365)),
		}

		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			log.Printf("Failed to create user %s: %v", username, err)
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createFollowMesh(ctx context.Context, users []models.User) error {
	if len(users) < 2 {
		return nil
	}
	for i := range users {
		n := s.rnd.Intn(len(users)/2 + 1)
		for j := 0; j < n; j++ {
			other := users[s.rnd.Intn(len(users))]
			if other.ID == users[i].ID {
				continue
			}
			follow := models.Follow{FollowerID: users[i].ID, FollowingID: other.ID}
			if err := s.db.WithContext(ctx).Create(&follow).Error; err != nil {
				continue // duplicate edge, skip
			}
			s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", users[i].ID).
				UpdateColumn("following_count", gorm.Expr("following_count + 1"))
			s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", other.ID).
				UpdateColumn("followers_count", gorm.Expr("followers_count + 1"))
		}
	}
	return nil
}

func (s *Seeder) createProjects(ctx context.Context, users []models.User, count int) ([]models.Project, error) {
	if len(users) == 0 {
		return nil, nil
	}
	projects := make([]models.Project, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.rnd.Intn(len(users))]

		project := models.Project{
			Title:       gofakeit.AppName(),
			Description: gofakeit.Paragraph(1, 2, 8, " "),
			Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/450", gofakeit.UUID()),
			Tags:        s.pickTags(),
			AuthorID:    author.ID,
			Author: models.ProjectAuthor{
				Name:     author.FullName,
				Username: author.Username,
				Avatar:   author.Avatar,
			},
			GithubURL: fmt.Sprintf("https://github.com/%s/%s", author.Username, gofakeit.Word()),
			Views:     int64(s.rnd.Intn(2000)),
			CreatedAt: time.Now().UTC().AddDate(0, 0, -s.rnd.Intn(180)),
		}

		if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
			return nil, err
		}
		s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", author.ID).
			UpdateColumn("projects_count", gorm.Expr("projects_count + 1"))
		projects = append(projects, project)
	}
	return projects, nil
}

func (s *Seeder) createStars(ctx context.Context, users []models.User, projects []models.Project) error {
	if len(users) == 0 {
		return nil
	}
	for i := range projects {
		n := s.rnd.Intn(len(users)/3 + 1)
		for j := 0; j < n; j++ {
			user := users[s.rnd.Intn(len(users))]
			star := models.Star{UserID: user.ID, ProjectID: projects[i].ID}
			if err := s.db.WithContext(ctx).Create(&star).Error; err != nil {
				continue // already starred
			}
			s.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", projects[i].ID).
				UpdateColumn("stars", gorm.Expr("stars + 1"))
		}
	}
	return nil
}

func (s *Seeder) createConversations(ctx context.Context, users []models.User) error {
	if len(users) < 2 {
		return nil
	}

	count := len(users) / 2
	for i := 0; i < count; i++ {
		a := users[s.rnd.Intn(len(users))]
		b := users[s.rnd.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}

		conv := models.Conversation{UserAID: a.ID, UserBID: b.ID, LastMessageAt: time.Now().UTC()}
		if err := s.db.WithContext(ctx).Create(&conv).Error; err != nil {
			continue // pair already has a conversation
		}

		msgs := 1 + s.rnd.Intn(10)
		for j := 0; j < msgs; j++ {
			sender := a
			if j%2 == 1 {
				sender = b
			}
			msg := models.Message{
				ConversationID: conv.ID,
				SenderID:       sender.ID,
				SenderName:     sender.FullName,
				Content:        gofakeit.Sentence(6 + s.rnd.Intn(10)),
				CreatedAt:      time.Now().UTC().Add(-time.Duration(msgs-j) * time.Minute),
			}
			if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
				return err
			}
			s.db.WithContext(ctx).Model(&models.Conversation{}).Where("id = ?", conv.ID).
				Updates(map[string]any{"last_message": msg.Content, "last_message_at": msg.CreatedAt})
		}
	}
	return nil
}
