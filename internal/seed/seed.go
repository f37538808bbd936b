package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/ard-guilherme/looper-reports/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// seededDays covers six full weeks so cadence inference has real history.
const seededDays = 42

// Run seeds the database with sample students, check-ins and macro goals.
// Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.Student{}, &domain.Checkin{}, &domain.MacroGoal{}, &domain.Report{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	students := []domain.Student{
		{
			ID:                uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:              "Maria Souza",
			Email:             "maria@example.com",
			AdditionalContext: "Objetivo: hipertrofia. Histórico de dor no ombro esquerdo.",
			Active:            true,
		},
		{
			ID:                uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:              "João Pereira",
			Email:             "joao@example.com",
			AdditionalContext: "Objetivo: recomposição corporal. Trabalha em turnos noturnos.",
			Active:            true,
		},
		{
			ID:     uuid.MustParse("33333333-3333-3333-3333-333333333333"),
			Name:   "Ana Lima",
			Email:  "ana@example.com",
			Active: true,
		},
	}

	goals := map[uuid.UUID]domain.MacroGoal{
		students[0].ID: {Calories: 2400, Protein: 160, Carbs: 250, Fat: 80, Active: true},
		students[1].ID: {Calories: 2800, Protein: 180, Carbs: 300, Fat: 90, Active: true},
		students[2].ID: {Calories: 2000, Protein: 130, Carbs: 200, Fat: 70, Active: true},
	}

	for _, student := range students {
		if err := db.Where("id = ?", student.ID).FirstOrCreate(&student).Error; err != nil {
			return fmt.Errorf("failed to create student %s: %w", student.ID, err)
		}

		goal := goals[student.ID]
		goal.StudentID = student.ID
		if err := db.Where("student_id = ? AND active = ?", student.ID, true).FirstOrCreate(&goal).Error; err != nil {
			return fmt.Errorf("failed to create macro goal for %s: %w", student.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, student := range students {
		if err := seedCheckinsForStudent(db, student, goals[student.ID], rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedCheckinsForStudent(db *gorm.DB, student domain.Student, goal domain.MacroGoal, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i).Format(domain.CheckinDateLayout)

		checkin := domain.Checkin{
			StudentID:   student.ID,
			CheckinDate: date,
			Nutrition: domain.Nutrition{
				Calories: goal.Calories + float64(rng.Intn(400)-200),
				Protein:  goal.Protein + float64(rng.Intn(30)-15),
				Carbs:    goal.Carbs + float64(rng.Intn(60)-30),
				Fat:      goal.Fat + float64(rng.Intn(20)-10),
			},
			Sleep: domain.Sleep{
				DurationHours: 5.5 + rng.Float64()*3,
				QualityRating: 3 + rng.Intn(3),
				StartTime:     fmt.Sprintf("%02d:%02d", 22+rng.Intn(2), rng.Intn(60)),
				EndTime:       fmt.Sprintf("%02d:%02d", 6+rng.Intn(2), rng.Intn(60)),
			},
			Training: domain.Training{
				Journal: trainingJournal(rng, i),
			},
		}
		if rng.Float32() < 0.2 {
			checkin.Training.StudentNotes = "Senti o treino pesado hoje, mas consegui completar tudo."
		}

		if err := db.Where("student_id = ? AND checkin_date = ?", student.ID, date).
			FirstOrCreate(&checkin).Error; err != nil {
			return fmt.Errorf("failed to create check-in for %s on %s: %w", student.ID, date, err)
		}
	}
	return nil
}

// trainingJournal produces a realistic free-text journal: roughly two rest
// days per week, the rest following the informal "Série N: carga x reps"
// convention the set counter recognizes.
func trainingJournal(rng *rand.Rand, dayOffset int) string {
	if dayOffset%7 == 3 || dayOffset%7 == 6 {
		return "não treinei hoje"
	}

	exercises := [][]string{
		{"Supino reto", "Supino inclinado", "Crucifixo"},
		{"Agachamento livre", "Leg press", "Cadeira extensora"},
		{"Levantamento terra", "Remada curvada", "Puxada alta"},
		{"Desenvolvimento militar", "Elevação lateral", "Tríceps corda"},
	}
	day := exercises[rng.Intn(len(exercises))]

	journal := ""
	for _, exercise := range day {
		journal += exercise + "\n"
		sets := 3 + rng.Intn(2)
		for s := 1; s <= sets; s++ {
			journal += fmt.Sprintf("Série %d: %d kg x %d\n", s, 20+rng.Intn(80), 6+rng.Intn(7))
		}
		journal += "\n"
	}
	return journal
}
