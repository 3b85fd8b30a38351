package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinetick/internal/dal"
	"cinetick/internal/models"
	"cinetick/internal/shared/config"
	"cinetick/internal/shared/database"
	"cinetick/internal/users"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting CineTick Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}
	ctx := context.Background()

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(ctx); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(ctx); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase drops every collection the service writes to.
func (s *Seeder) CleanDatabase(ctx context.Context) error {
	collections := []string{
		"tickets",
		"ratings",
		"movie_projections",
		"movies",
		"organizations",
		"persons",
		"users",
	}

	for _, name := range collections {
		fmt.Printf("  Dropping collection: %s\n", name)
		if err := s.db.Mongo.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop collection %s: %w", name, err)
		}
	}

	return nil
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll(ctx context.Context) error {
	// Seed users first (no dependencies)
	if err := s.SeedUsers(ctx); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	// Seed the movie catalog with projections
	movieIDs, err := s.SeedMovies(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	// Seed organizations and persons
	if err := s.SeedDirectory(ctx); err != nil {
		return fmt.Errorf("failed to seed directory: %w", err)
	}

	// Seed a few ratings on the first movie
	if err := s.SeedRatings(ctx, movieIDs[0]); err != nil {
		return fmt.Errorf("failed to seed ratings: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if redisClient := s.db.GetRedis(); redisClient != nil {
		if err := redisClient.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedUsers creates 3 users: 1 administrator and 2 registered users
func (s *Seeder) SeedUsers(ctx context.Context) error {
	fmt.Println("  👤 Seeding users...")

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		name  string
		email string
		role  users.Role
	}{
		{"Admin User", "admin@cinetick.dev", users.RoleAdministrator},
		{"Ada Moviegoer", "ada@cinetick.dev", users.RoleRegisteredUser},
		{"Ben Moviegoer", "ben@cinetick.dev", users.RoleRegisteredUser},
	}

	var seedUsers []models.User
	for _, userData := range usersData {
		seedUsers = append(seedUsers, models.User{
			ID:        uuid.New(),
			Name:      userData.name,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      string(userData.role),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		})
		fmt.Printf("    ✅ Created user: %s (%s)\n", userData.email, userData.role)
	}

	if _, err := s.db.Stores().Users().InsertMany(ctx, seedUsers); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}

// SeedMovies creates sample movies, each with a pair of projections.
func (s *Seeder) SeedMovies(ctx context.Context) ([]uuid.UUID, error) {
	fmt.Println("  🎬 Seeding movies and projections...")

	moviesData := []struct {
		title       string
		description string
		genre       string
		released    time.Time
		totalSeats  int32
	}{
		{
			title:       "The Long Projection",
			description: "A projectionist discovers the reels never end.",
			genre:       "drama",
			released:    time.Date(2023, 3, 10, 0, 0, 0, 0, time.UTC),
			totalSeats:  120,
		},
		{
			title:       "Seat 4F",
			description: "Every screening, the same seat stays empty.",
			genre:       "thriller",
			released:    time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC),
			totalSeats:  80,
		},
		{
			title:       "Intermission",
			description: "A comedy set entirely in a cinema lobby.",
			genre:       "comedy",
			released:    time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC),
			totalSeats:  60,
		},
	}

	var movieIDs []uuid.UUID
	uow := dal.NewUnitOfWork(s.db.Stores())

	for i, movieData := range moviesData {
		movie := models.Movie{
			ID:          uuid.New(),
			Title:       movieData.title,
			Description: movieData.description,
			Genre:       movieData.genre,
			ReleaseDate: movieData.released,
		}

		// Two showings per movie: an evening slot today+N and a matinee the day after
		evening := time.Now().AddDate(0, 0, i+1).Truncate(time.Hour)
		for _, start := range []time.Time{evening, evening.AddDate(0, 0, 1).Add(-6 * time.Hour)} {
			projection := models.MovieProjection{
				ID:             uuid.New(),
				MovieID:        movie.ID,
				StartTime:      start,
				TotalSeats:     movieData.totalSeats,
				AvailableSeats: movieData.totalSeats,
			}
			movie.MovieProjectionIDs = append(movie.MovieProjectionIDs, projection.ID)
			uow.Projections.Add(projection)
		}

		uow.Movies.Add(movie)
		movieIDs = append(movieIDs, movie.ID)
		fmt.Printf("    ✅ Created movie: %s (%d projections)\n", movie.Title, len(movie.MovieProjectionIDs))
	}

	if _, err := uow.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist movies: %w", err)
	}
	return movieIDs, nil
}

// SeedDirectory creates sample organizations and persons.
func (s *Seeder) SeedDirectory(ctx context.Context) error {
	fmt.Println("  🏢 Seeding organizations and persons...")

	uow := dal.NewUnitOfWork(s.db.Stores())

	orgsData := []struct {
		name string
		code string
	}{
		{"Grand Palace Cinemas", "GPC"},
		{"Northside Film Society", "NFS"},
	}
	for _, orgData := range orgsData {
		uow.Organizations.Add(models.Organization{
			ID:   uuid.New(),
			Name: orgData.name,
			Code: orgData.code,
		})
		fmt.Printf("    ✅ Created organization: %s (%s)\n", orgData.name, orgData.code)
	}

	personsData := []struct {
		firstName string
		lastName  string
		age       int32
		orgs      []string
	}{
		{"Marta", "Keller", 41, []string{"GPC"}},
		{"Jonas", "Petersen", 29, []string{"GPC", "NFS"}},
		{"Iris", "Okafor", 35, []string{"NFS"}},
	}
	for _, personData := range personsData {
		uow.Persons.Add(models.Person{
			ID:            uuid.New(),
			FirstName:     personData.firstName,
			LastName:      personData.lastName,
			Age:           personData.age,
			Organizations: personData.orgs,
		})
		fmt.Printf("    ✅ Created person: %s %s\n", personData.firstName, personData.lastName)
	}

	if _, err := uow.Commit(ctx); err != nil {
		return fmt.Errorf("failed to persist directory: %w", err)
	}
	return nil
}

// SeedRatings attaches a few ratings to the given movie.
func (s *Seeder) SeedRatings(ctx context.Context, movieID uuid.UUID) error {
	fmt.Println("  ⭐ Seeding ratings...")

	uow := dal.NewUnitOfWork(s.db.Stores())
	for _, value := range []float64{8.5, 7.0, 9.0} {
		uow.Ratings.Add(models.Rating{
			ID:      uuid.New(),
			MovieID: movieID,
			Value:   value,
			UserID:  uuid.New(),
		})
	}

	if _, err := uow.Commit(ctx); err != nil {
		return fmt.Errorf("failed to persist ratings: %w", err)
	}
	fmt.Println("    ✅ Created 3 ratings")
	return nil
}
