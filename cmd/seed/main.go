// Seeds the vector store with demonstration vents: 20 Engineering
// entries leaning stress/burnout, 20 Arts entries leaning loneliness,
// and 10 high-anger entries split across both cohorts. Skips seeding
// when the store already has data.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/mindease/mindease-backend/internal/anonymize"
	"github.com/mindease/mindease-backend/internal/emotions"
	"github.com/mindease/mindease-backend/internal/platform/chroma"
	"github.com/mindease/mindease-backend/internal/platform/envutil"
	"github.com/mindease/mindease-backend/internal/platform/gemini"
	"github.com/mindease/mindease-backend/internal/platform/logger"
)

var engineeringVents = []string{
	"I have three exams next week and I haven't slept in days",
	"This coding assignment is impossible, I'm going to fail",
	"Everyone else understands the material but I'm completely lost",
	"I can't keep up with the workload, it's crushing me",
	"My project deadline is tomorrow and nothing works",
	"I'm so tired I can't think straight anymore",
	"The professor expects too much, this is unrealistic",
	"I studied for hours but still failed the midterm",
	"I don't understand why I'm even doing this degree",
	"My parents will be so disappointed if I don't get good grades",
	"I'm falling behind and there's no way to catch up",
	"This internship rejection feels like the end of my career",
	"I can't afford to fail this course again",
	"Everyone is getting job offers except me",
	"I'm exhausted but I have to keep going",
	"The competition is too intense, I can't breathe",
	"I haven't eaten properly in three days because of deadlines",
	"My mental health is deteriorating but I can't stop",
	"I feel like a failure compared to my classmates",
	"I don't know how much longer I can do this",
}

var artsVents = []string{
	"Nobody understands my creative vision",
	"I feel so isolated in this program",
	"My art doesn't resonate with anyone",
	"I'm questioning if I have any real talent",
	"The critique session destroyed my confidence",
	"I feel invisible in this community",
	"My family thinks my degree is worthless",
	"I'm surrounded by people but feel completely alone",
	"I don't fit in with the other artists",
	"My work is never good enough for the professors",
	"I'm losing my passion for creating",
	"Financial stress is killing my creativity",
	"I feel like an imposter in every class",
	"Nobody takes my art seriously",
	"I'm too different, I don't belong here",
	"My portfolio feels empty and meaningless",
	"I can't express what I'm feeling through my work",
	"The industry is too competitive, I'll never make it",
	"I'm doubting every creative choice I make",
	"I feel disconnected from everything and everyone",
}

var angerVents = []string{
	"This system is completely broken and unfair",
	"I'm so angry I want to break everything",
	"The administration doesn't care about students at all",
	"I'm furious at how I've been treated",
	"This is absolute bullshit and I'm done",
	"I hate everything about this place",
	"They're setting us up to fail on purpose",
	"I'm enraged by the injustice of this situation",
	"Nothing is fair, everything is rigged against us",
	"I'm so mad I can't even think clearly",
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using process environment")
	}

	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	embedder, err := gemini.NewClient(log)
	if err != nil {
		log.Error("Could not init Gemini client", "error", err)
		os.Exit(1)
	}

	chromaCfg, err := chroma.ResolveConfigFromEnv()
	if err != nil {
		log.Error("Invalid Chroma config", "error", err)
		os.Exit(1)
	}
	store, err := chroma.NewVectorStore(log, chromaCfg)
	if err != nil {
		log.Error("Could not init Chroma vector store", "error", err)
		os.Exit(1)
	}

	engine := emotions.NewEngine(log, embedder, store)
	ctx := context.Background()

	stats, err := engine.Stats(ctx)
	if err != nil {
		log.Error("Could not read store stats", "error", err)
		os.Exit(1)
	}
	if stats.TotalEntries > 0 {
		log.Info("Store already seeded, skipping", "total_entries", stats.TotalEntries)
		return
	}

	total := 0
	for i, vent := range engineeringVents {
		rawUser := fmt.Sprintf("eng_user_%03d", i+1)
		if err := seedVent(ctx, engine, rawUser, "Engineering_2024", vent, map[string]any{
			"department": "Engineering",
			"year":       "2024",
		}); err != nil {
			log.Error("Seed entry failed", "cohort_id", "Engineering_2024", "error", err)
			os.Exit(1)
		}
		total++
	}
	log.Info("Seeded Engineering cohort", "count", len(engineeringVents))

	for i, vent := range artsVents {
		rawUser := fmt.Sprintf("arts_user_%03d", i+1)
		if err := seedVent(ctx, engine, rawUser, "Arts_2024", vent, map[string]any{
			"department": "Arts",
			"year":       "2024",
		}); err != nil {
			log.Error("Seed entry failed", "cohort_id", "Arts_2024", "error", err)
			os.Exit(1)
		}
		total++
	}
	log.Info("Seeded Arts cohort", "count", len(artsVents))

	for i, vent := range angerVents {
		cohort := "Engineering_2024"
		if i%2 == 1 {
			cohort = "Arts_2024"
		}
		rawUser := fmt.Sprintf("angry_user_%03d", i+1)
		if err := seedVent(ctx, engine, rawUser, cohort, vent, map[string]any{
			"high_anger_flag": true,
		}); err != nil {
			log.Error("Seed entry failed", "cohort_id", cohort, "error", err)
			os.Exit(1)
		}
		total++
	}
	log.Info("Seeded high-anger entries", "count", len(angerVents))

	log.Info("Seeding complete", "total_entries", total)
}

func seedVent(ctx context.Context, engine *emotions.Engine, rawUserID, cohortID, text string, metadata map[string]any) error {
	_, err := engine.Ingest(ctx, anonymize.UserID(rawUserID), cohortID, text, metadata)
	return err
}
