package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/database"
	"github.com/classhub/classhub-backend/internal/logger"
	"github.com/classhub/classhub-backend/internal/model"
	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/classhub/classhub-backend/internal/service"
)

const demoPassword = "classhub-demo"

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	homeworkRepo := repository.NewHomeworkRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)

	userService := service.NewUserService(userRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	homeworkService := service.NewHomeworkService(homeworkRepo)
	messageService := service.NewMessageService(messageRepo)

	fmt.Println("=== Seeding Demo Class ===")

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash demo password")
	}

	classID := "C1"

	// Teacher
	teacher := &model.User{
		Email:        "teacher@classhub.demo",
		Name:         "Dian Paramita",
		Role:         model.RoleTeacher,
		PasswordHash: string(hash),
		ClassID:      &classID,
	}
	if err := userService.CreateProfile(ctx, teacher); err != nil {
		log.Fatal().Err(err).Msg("Failed to create teacher")
	}
	fmt.Printf("Created teacher %s (%s)\n", teacher.Name, teacher.ID)

	// Parent
	parent := &model.User{
		Email:        "parent@classhub.demo",
		Name:         "Bambang Wijaya",
		Role:         model.RoleParent,
		PasswordHash: string(hash),
	}
	if err := userService.CreateProfile(ctx, parent); err != nil {
		log.Fatal().Err(err).Msg("Failed to create parent")
	}
	fmt.Printf("Created parent %s (%s)\n", parent.Name, parent.ID)

	// Students, the first one linked to the parent account.
	names := []string{
		"Budi Santoso", "Siti Aminah", "Andi Pratama", "Rina Wati", "Joko Susilo",
		"Ayu Lestari", "Dodi Kusuma", "Eka Putri", "Fahri Hamzah", "Gita Savitri",
	}

	students := make([]*model.User, 0, len(names))
	for i, name := range names {
		student := &model.User{
			Email:        fmt.Sprintf("student%d@classhub.demo", i+1),
			Name:         name,
			Role:         model.RoleStudent,
			PasswordHash: string(hash),
			ClassID:      &classID,
		}
		if i == 0 {
			student.ParentID = &parent.ID
		}
		if err := userService.CreateProfile(ctx, student); err != nil {
			fmt.Printf("Error creating student %s: %v\n", name, err)
			continue
		}
		students = append(students, student)
	}
	fmt.Printf("Created %d/%d students\n", len(students), len(names))

	// Yesterday's attendance: everyone present except the third student.
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	entries := make([]model.MarkAttendanceEntry, 0, len(students))
	for i, s := range students {
		status := model.AttendancePresent
		if i == 2 {
			status = model.AttendanceAbsent
		}
		entries = append(entries, model.MarkAttendanceEntry{
			StudentID:   s.ID,
			StudentName: s.Name,
			Status:      status,
		})
	}
	if _, err := attendanceService.Mark(ctx, classID, yesterday, entries, teacher.ID); err != nil {
		fmt.Printf("Error marking attendance: %v\n", err)
	} else {
		fmt.Printf("Marked attendance for %s\n", yesterday)
	}

	// Homework due next week.
	dueDate := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	homeworkID, err := homeworkService.Assign(ctx, classID, "Mathematics", dueDate, "Chapter 4 exercises 1-12", teacher.ID)
	if err != nil {
		fmt.Printf("Error assigning homework: %v\n", err)
	} else {
		fmt.Printf("Assigned homework %s due %s\n", homeworkID, dueDate)
	}

	// The first student already submitted.
	if homeworkID != "" && len(students) > 0 {
		if err := homeworkService.Submit(ctx, homeworkID, students[0].ID, classID); err != nil {
			fmt.Printf("Error submitting homework: %v\n", err)
		}
	}

	// A welcome message from the teacher.
	if _, err := messageService.Post(ctx, classID, teacher.ID, teacher.Name, teacher.Role, "Welcome to the class feed! Homework for next week is posted."); err != nil {
		fmt.Printf("Error posting message: %v\n", err)
	}

	fmt.Println("\nSeed completed!")
	fmt.Printf("All accounts use password %q\n", demoPassword)
}
