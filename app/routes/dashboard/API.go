package dashboard

import (
	"log"
	"time"

	"github.com/dghimirey/edVance/app/config"
	"github.com/dghimirey/edVance/app/database"
	"github.com/dghimirey/edVance/app/models"
	"github.com/gofiber/fiber/v2"
)

func DashboardPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("dashboard/index", fiber.Map{
		"Title":       "Dashboard - edVance",
		"CurrentPage": "dashboard",
		"user":        user,
		"FullName":    user.FullName,
		"Role":        user.Role,
	})
}

func GetAdminStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	stats := &models.AdminStats{}

	roles, err := database.GetUserRoleRows(db)
	if err != nil {
		log.Printf("Failed to fetch user roles: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	stats.TotalUsers = len(roles)
	stats.ActiveUsers = len(roles)
	stats.RoleDistribution = CountRoles(roles)
	for _, rc := range stats.RoleDistribution {
		switch rc.Role {
		case models.RoleStudent:
			stats.TotalStudents = rc.Count
		case models.RoleTeacher:
			stats.TotalTeachers = rc.Count
		}
	}

	if stats.PendingApprovals, err = database.CountPendingApprovals(db); err != nil {
		log.Printf("Failed to count pending approvals: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	if stats.TotalClasses, err = database.CountActiveClasses(db); err != nil {
		log.Printf("Failed to count classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	today := time.Now().Truncate(24 * time.Hour)
	statuses, err := database.GetAttendanceStatuses(db, today, "")
	if err != nil {
		log.Printf("Failed to fetch today's attendance: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	stats.TodayAttendanceRate = AttendanceRate(statuses)

	if stats.UpcomingExams, err = database.CountUpcomingExams(db, today); err != nil {
		log.Printf("Failed to count upcoming exams: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	return c.JSON(fiber.Map{"stats": stats})
}

func GetTeacherStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	teacherID := c.Locals("user_id").(string)
	stats := &models.TeacherStats{}

	var err error
	if stats.MyClasses, err = database.CountTeacherClasses(db, teacherID); err != nil {
		log.Printf("Failed to count teacher classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	if stats.TotalStudents, err = database.CountTeacherStudents(db, teacherID); err != nil {
		log.Printf("Failed to count teacher students: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	classIDs, err := database.GetTeacherClassIDs(db, teacherID)
	if err != nil {
		log.Printf("Failed to fetch teacher classes: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	today := time.Now().Truncate(24 * time.Hour)
	var statuses []models.AttendanceStatus
	for _, classID := range classIDs {
		s, err := database.GetAttendanceStatuses(db, today, classID)
		if err != nil {
			log.Printf("Failed to fetch attendance for class %s: %v", classID, err)
			return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
		}
		statuses = append(statuses, s...)
	}
	stats.TodayAttendanceRate = AttendanceRate(statuses)

	if stats.UpcomingExams, err = database.CountUpcomingExamsForClasses(db, today, classIDs); err != nil {
		log.Printf("Failed to count upcoming exams: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	return c.JSON(fiber.Map{"stats": stats})
}

func GetStudentStatsAPI(c *fiber.Ctx) error {
	db := config.GetDB()
	studentID := c.Locals("user_id").(string)
	stats := &models.StudentStats{}

	classIDs, err := database.GetStudentClassIDs(db, studentID)
	if err != nil {
		log.Printf("Failed to fetch enrollments: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	stats.EnrolledClasses = len(classIDs)

	statuses, err := database.GetStudentAttendanceStatuses(db, studentID)
	if err != nil {
		log.Printf("Failed to fetch attendance: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	stats.AttendanceRate = AttendanceRate(statuses)

	today := time.Now().Truncate(24 * time.Hour)
	if stats.UpcomingExams, err = database.CountUpcomingExamsForClasses(db, today, classIDs); err != nil {
		log.Printf("Failed to count upcoming exams: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}
	if stats.RecentMarks, err = database.CountRecentMarks(db, studentID); err != nil {
		log.Printf("Failed to count recent marks: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load dashboard"})
	}

	return c.JSON(fiber.Map{"stats": stats})
}
