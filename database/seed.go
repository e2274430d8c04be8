package database

import (
	"eduflow/models"
	"log"
	"time"

	"gorm.io/gorm"
)

// Seed writes the fixed catalog, the two seed accounts, and an empty
// enrollment set on first access. Only absent keys are written, so an
// existing store is never overwritten.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Record{}).Where("key = ?", KeyCourses).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := Set(KeyCourses, seedCourses()); err != nil {
			return err
		}
		log.Println("Seeded course catalog.")
	}

	if err := db.Model(&Record{}).Where("key = ?", KeyUsers).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := Set(KeyUsers, seedUsers()); err != nil {
			return err
		}
		log.Println("Seeded user accounts.")
	}

	if err := db.Model(&Record{}).Where("key = ?", KeyEnrollments).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := Set(KeyEnrollments, []models.Enrollment{}); err != nil {
			return err
		}
	}

	// The session key stays absent until the first login.
	return nil
}

func seedUsers() []models.User {
	now := time.Now()
	return []models.User{
		{ID: "u1", Name: "Admin User", Email: "admin@eduflow.com", Role: models.RoleAdmin, CreatedAt: now},
		{ID: "u2", Name: "John Doe", Email: "john@example.com", Role: models.RoleUser, CreatedAt: now},
	}
}

func seedCourses() []models.Course {
	now := time.Now()
	return []models.Course{
		{
			ID:           "c1",
			Title:        "Modern Web Development with React",
			Slug:         "modern-web-development-react",
			Description:  "Master React 18, Hooks, and the modern ecosystem. Build production-grade applications from scratch.",
			Category:     "Development",
			Difficulty:   models.DifficultyIntermediate,
			Price:        99.99,
			ThumbnailURL: "https://images.unsplash.com/photo-1633356122544-f134324a6cee?auto=format&fit=crop&q=80&w=800",
			Lessons: []models.Lesson{
				{ID: "l1", Title: "Introduction to React 18", Content: "Explore concurrent rendering and new features.", Order: 1},
				{ID: "l2", Title: "State Management with Context", Content: "Learn when to use Context over Redux.", Order: 2},
				{ID: "l3", Title: "Advanced Hooks", Content: "Deep dive into useMemo, useCallback, and custom hooks.", Order: 3},
			},
			CreatedAt: now,
		},
		{
			ID:           "c2",
			Title:        "UI/UX Design Essentials",
			Slug:         "ui-ux-design-essentials",
			Description:  "Learn the principles of modern design. Master Figma and build stunning user interfaces.",
			Category:     "Design",
			Difficulty:   models.DifficultyBeginner,
			Price:        49.99,
			ThumbnailURL: "https://images.unsplash.com/photo-1586717791821-3f44a563eb4c?auto=format&fit=crop&q=80&w=800",
			Lessons: []models.Lesson{
				{ID: "l4", Title: "Design Thinking Process", Content: "Empathize, Define, Ideate, Prototype, Test.", Order: 1},
				{ID: "l5", Title: "Figma Fundamentals", Content: "Components, Auto-layout, and Prototyping.", Order: 2},
			},
			CreatedAt: now,
		},
		{
			ID:           "c4",
			Title:        "Data Structures & Algorithms",
			Slug:         "data-structures-algorithms",
			Description:  "The foundation of Computer Science. Master Big O notation, trees, graphs, and dynamic programming.",
			Category:     "Computer Science",
			Difficulty:   models.DifficultyIntermediate,
			Price:        79.99,
			ThumbnailURL: "https://images.unsplash.com/photo-1515879218367-8466d910aaa4?auto=format&fit=crop&q=80&w=800",
			Lessons: []models.Lesson{
				{ID: "l8", Title: "Complexity Analysis", Content: "Mastering Big O notation and space-time tradeoffs.", Order: 1},
				{ID: "l9", Title: "Graph Theory", Content: "BFS, DFS, and Dijkstra's algorithm explained.", Order: 2},
			},
			CreatedAt: now,
		},
		{
			ID:           "c5",
			Title:        "Introduction to Machine Learning",
			Slug:         "intro-machine-learning",
			Description:  "Learn to build predictive models. Covers regression, classification, and neural networks using Python.",
			Category:     "Computer Science",
			Difficulty:   models.DifficultyAdvanced,
			Price:        149.99,
			ThumbnailURL: "https://images.unsplash.com/photo-1555949963-ff9fe0c870eb?auto=format&fit=crop&q=80&w=800",
			Lessons: []models.Lesson{
				{ID: "l10", Title: "Supervised Learning", Content: "Linear regression and decision trees.", Order: 1},
				{ID: "l11", Title: "Neural Networks 101", Content: "Understanding backpropagation and activation functions.", Order: 2},
			},
			CreatedAt: now,
		},
		{
			ID:           "c6",
			Title:        "Human Anatomy & Physiology",
			Slug:         "human-anatomy-physiology",
			Description:  "A comprehensive guide to the human body systems. Perfect for medical students and nursing prep.",
			Category:     "Medical",
			Difficulty:   models.DifficultyIntermediate,
			Price:        119.99,
			ThumbnailURL: "https://images.unsplash.com/photo-1530026405186-ed1f139313f8?auto=format&fit=crop&q=80&w=800",
			Lessons: []models.Lesson{
				{ID: "l12", Title: "The Skeletal System", Content: "Bone structure, classification, and joints.", Order: 1},
				{ID: "l13", Title: "Cardiovascular Dynamics", Content: "Heart anatomy and blood flow mechanics.", Order: 2},
			},
			CreatedAt: now,
		},
		{
			ID:           "c7",
			Title:        "Clinical Pharmacology",
			Slug:         "clinical-pharmacology",
			Description:  "Understand drug interactions, pharmacokinetics, and clinical applications in patient care.",
			Category:     "Medical",
			Difficulty:   models.DifficultyAdvanced,
			Price:        139.99,
			ThumbnailURL: "https://images.unsplash.com/photo-1587854692152-cbe660dbbb88?auto=format&fit=crop&q=80&w=800",
			Lessons: []models.Lesson{
				{ID: "l14", Title: "Pharmacokinetics", Content: "Absorption, Distribution, Metabolism, and Excretion.", Order: 1},
				{ID: "l15", Title: "Antibiotic Stewardship", Content: "Proper use and resistance mechanisms.", Order: 2},
			},
			CreatedAt: now,
		},
		{
			ID:           "c8",
			Title:        "Bioethics & Professionalism",
			Slug:         "bioethics-professionalism",
			Description:  "Navigating ethical dilemmas in modern medicine. Patient rights, consent, and end-of-life care.",
			Category:     "Medical",
			Difficulty:   models.DifficultyBeginner,
			Price:        59.99,
			ThumbnailURL: "https://images.unsplash.com/photo-1576091160550-2173dba999ef?auto=format&fit=crop&q=80&w=800",
			Lessons: []models.Lesson{
				{ID: "l16", Title: "Informed Consent", Content: "The legal and moral requirements for patient autonomy.", Order: 1},
				{ID: "l17", Title: "Confidentiality (HIPAA)", Content: "Maintaining privacy in the digital age.", Order: 2},
			},
			CreatedAt: now,
		},
		{
			ID:           "c3",
			Title:        "Advanced Node.js Microservices",
			Slug:         "advanced-node-microservices",
			Description:  "Architect scalable backend systems using Node.js, Docker, and Kubernetes.",
			Category:     "Development",
			Difficulty:   models.DifficultyAdvanced,
			Price:        129.99,
			ThumbnailURL: "https://images.unsplash.com/photo-1555066931-4365d14bab8c?auto=format&fit=crop&q=80&w=800",
			Lessons: []models.Lesson{
				{ID: "l6", Title: "Event-Driven Architecture", Content: "RabbitMQ and Kafka in microservices.", Order: 1},
				{ID: "l7", Title: "Dockerizing Node Apps", Content: "Optimizing Dockerfiles for production.", Order: 2},
			},
			CreatedAt: now,
		},
	}
}
