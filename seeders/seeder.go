package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maitriparekhcs2848/GearGuard/pkg/utils"
)

// SeedDemoData wipes and refills teams, equipments and requests with a small
// demo dataset. Order matters: requests reference equipments, equipments
// reference teams.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("seeding demo data...")

	teamIDs, err := seedTeams(ctx, db)
	if err != nil {
		log.Fatalf("seeding teams: %v", err)
	}
	equipmentIDs, err := seedEquipments(ctx, db, teamIDs)
	if err != nil {
		log.Fatalf("seeding equipments: %v", err)
	}
	if err := seedRequests(ctx, db, equipmentIDs); err != nil {
		log.Fatalf("seeding requests: %v", err)
	}

	log.Println("demo data seeded")
}

// SeedAdminUser creates the initial account if it does not exist yet.
func SeedAdminUser(db *pgxpool.Pool, email, name, password string) {
	ctx := context.Background()

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("hashing admin password: %v", err)
	}

	query := `INSERT INTO users (id, email, name, password_hash)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (email) DO NOTHING`
	tag, err := db.Exec(ctx, query, uuid.NewString(), email, name, hash)
	if err != nil {
		log.Fatalf("creating admin user: %v", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("admin user %q already exists, skipping", email)
		return
	}
	log.Printf("admin user %q created", email)
}

func seedTeams(ctx context.Context, db *pgxpool.Pool) (map[string]string, error) {
	log.Println("  - teams...")

	if _, err := db.Exec(ctx, "TRUNCATE TABLE teams CASCADE"); err != nil {
		return nil, err
	}

	ids := make(map[string]string, len(teamsData))
	query := `INSERT INTO teams (id, name, specialization, members) VALUES ($1, $2, $3, $4)`
	for _, t := range teamsData {
		id := uuid.NewString()
		if _, err := db.Exec(ctx, query, id, t.Name, t.Specialization, t.Members); err != nil {
			return nil, fmt.Errorf("team %q: %w", t.Name, err)
		}
		ids[t.Name] = id
	}
	return ids, nil
}

func seedEquipments(ctx context.Context, db *pgxpool.Pool, teamIDs map[string]string) (map[string]string, error) {
	log.Println("  - equipments...")

	ids := make(map[string]string, len(equipmentsData))
	query := `INSERT INTO equipments (id, name, serial_number, category, department, team_id, location, condition, health_score)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	for _, e := range equipmentsData {
		teamID, ok := teamIDs[e.TeamName]
		if !ok {
			return nil, fmt.Errorf("equipment %q references unknown team %q", e.Name, e.TeamName)
		}
		id := uuid.NewString()
		if _, err := db.Exec(ctx, query, id, e.Name, e.SerialNumber, e.Category, e.Department, teamID, e.Location, e.Condition, e.HealthScore); err != nil {
			return nil, fmt.Errorf("equipment %q: %w", e.Name, err)
		}
		ids[e.Name] = id
	}
	return ids, nil
}

func seedRequests(ctx context.Context, db *pgxpool.Pool, equipmentIDs map[string]string) error {
	log.Println("  - requests...")

	query := `INSERT INTO requests (id, subject, status, equipment_id, team_id, type, priority, scheduled_date, description)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, now(), $8)`
	counter := `UPDATE equipments SET maintenance_count = maintenance_count + 1 WHERE id = $1`
	for _, r := range requestsData {
		equipmentID, ok := equipmentIDs[r.EquipmentName]
		if !ok {
			return fmt.Errorf("request %q references unknown equipment %q", r.Subject, r.EquipmentName)
		}
		var teamID string
		row := db.QueryRow(ctx, "SELECT team_id FROM equipments WHERE id = $1", equipmentID)
		if err := row.Scan(&teamID); err != nil {
			return fmt.Errorf("request %q: %w", r.Subject, err)
		}
		if _, err := db.Exec(ctx, query, uuid.NewString(), r.Subject, r.Status, equipmentID, teamID, r.Type, r.Priority, r.Description); err != nil {
			return fmt.Errorf("request %q: %w", r.Subject, err)
		}
		if _, err := db.Exec(ctx, counter, equipmentID); err != nil {
			return fmt.Errorf("request %q counter: %w", r.Subject, err)
		}
	}
	return nil
}
