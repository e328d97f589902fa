package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/blaisecz/ring-analytics/internal/analytics"
	"github.com/blaisecz/ring-analytics/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededNights = 7

// Users are the sample accounts created by Run.
var Users = []domain.User{
	{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Prague"},
	{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
	{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
	{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
}

// Night is one generated night: the device session plus the overnight
// readings that go with it.
type Night struct {
	Session     domain.SleepSession
	HeartRate   []domain.HeartRateReading
	HRV         []domain.HRVReading
	SpO2        []domain.SpO2Reading
	Temperature []domain.TemperatureReading
}

// Run seeds the database with sample users, a week of nights and daily
// summaries. Safe to call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(domain.Models()...); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	for _, user := range Users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()
	for _, user := range Users {
		if err := seedUser(db, user, now, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedUser(db *gorm.DB, user domain.User, now time.Time, rng *rand.Rand) error {
	loc := user.Location()
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	for i := 1; i <= seededNights; i++ {
		day := today.AddDate(0, 0, -i)
		bedtime := day.Add(22*time.Hour + time.Duration(30+rng.Intn(60))*time.Minute)
		night := BuildNight(user.ID, bedtime, time.Duration(390+rng.Intn(120))*time.Minute, rng)

		clientReqID := fmt.Sprintf("seed-night-%s-%s", user.ID, day.Format(domain.DateKeyLayout))
		night.Session.ClientRequestID = &clientReqID

		result := db.Where("client_request_id = ?", clientReqID).FirstOrCreate(&night.Session)
		if result.Error != nil {
			return fmt.Errorf("failed to create sleep session: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// Night already seeded along with its readings.
			continue
		}
		if err := insertReadings(db, night); err != nil {
			return err
		}

		summary := BuildDailySummary(user.ID, day, night.Session, rng)
		if err := db.Where("user_id = ? AND date = ?", user.ID, summary.Date).FirstOrCreate(&summary).Error; err != nil {
			return fmt.Errorf("failed to create daily summary: %w", err)
		}
	}
	log.Printf("[seed] user %s (%s) ready", user.ID, user.Timezone)
	return nil
}

func insertReadings(db *gorm.DB, night Night) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(night.HeartRate, 200).Error; err != nil {
			return fmt.Errorf("failed to create heart rate readings: %w", err)
		}
		if err := tx.Create(&night.HRV).Error; err != nil {
			return fmt.Errorf("failed to create hrv readings: %w", err)
		}
		if err := tx.Create(&night.SpO2).Error; err != nil {
			return fmt.Errorf("failed to create spo2 readings: %w", err)
		}
		if err := tx.Create(&night.Temperature).Error; err != nil {
			return fmt.Errorf("failed to create temperature readings: %w", err)
		}
		return nil
	})
}

// cycle is one ultradian sleep cycle in minutes per stage.
var cycle = []struct {
	stage   domain.SleepStage
	minutes int
}{
	{domain.StageLight, 25},
	{domain.StageDeep, 30},
	{domain.StageLight, 15},
	{domain.StageREM, 20},
}

// heartRateOffset is the overnight heart-rate shift for a stage relative to
// the resting rate.
var heartRateOffset = map[domain.SleepStage]float64{
	domain.StageAwake: 18,
	domain.StageLight: -4,
	domain.StageDeep:  -12,
	domain.StageREM:   10,
}

// BuildNight generates a device session with a cyclic stage timeline and
// matching overnight readings. Deep sleep shortens and REM lengthens in
// later cycles.
func BuildNight(userID uuid.UUID, start time.Time, duration time.Duration, rng *rand.Rand) Night {
	end := start.Add(duration)
	restingHR := 50 + rng.Intn(12)

	segments := make([]domain.SleepSegment, 0, 24)
	cursor := start
	appendSegment := func(stage domain.SleepStage, minutes int) {
		segEnd := cursor.Add(time.Duration(minutes) * time.Minute)
		if segEnd.After(end) {
			segEnd = end
		}
		if !segEnd.After(cursor) {
			return
		}
		segments = append(segments, domain.SleepSegment{Stage: stage, StartTime: cursor, EndTime: segEnd})
		cursor = segEnd
	}

	appendSegment(domain.StageAwake, 5+rng.Intn(10))
	for n := 0; cursor.Before(end); n++ {
		for _, c := range cycle {
			minutes := c.minutes
			switch c.stage {
			case domain.StageDeep:
				minutes = max(c.minutes-8*n, 5)
			case domain.StageREM:
				minutes = c.minutes + 6*n
			}
			appendSegment(c.stage, minutes+rng.Intn(6))
		}
		if rng.Float64() < 0.3 {
			appendSegment(domain.StageAwake, 3+rng.Intn(5))
		}
	}

	totals := domain.TotalsFromSegments(segments)
	score := analytics.ScoreSleepTotals(totals)

	stored := make([]domain.SleepSegmentJSON, len(segments))
	for i, seg := range segments {
		stored[i] = domain.SleepSegmentJSON{Stage: string(seg.Stage), StartTime: seg.StartTime, EndTime: seg.EndTime}
	}
	detail, _ := json.Marshal(domain.SleepDetail{Segments: stored, RestingHR: restingHR})

	night := Night{
		Session: domain.SleepSession{
			UserID:     userID,
			StartTime:  start,
			EndTime:    end,
			DeepMin:    int(totals.Deep + 0.5),
			LightMin:   int(totals.Light + 0.5),
			RemMin:     int(totals.REM + 0.5),
			AwakeMin:   int(totals.Awake + 0.5),
			SleepScore: score.Total,
			DetailJSON: detail,
		},
	}

	for _, seg := range segments {
		for t := seg.StartTime; t.Before(seg.EndTime); t = t.Add(5 * time.Minute) {
			hr := float64(restingHR) + heartRateOffset[seg.Stage] + rng.NormFloat64()*2
			if seg.Stage == domain.StageREM {
				hr += rng.NormFloat64() * 3
			}
			night.HeartRate = append(night.HeartRate, domain.HeartRateReading{
				UserID:     userID,
				HeartRate:  int(hr + 0.5),
				RecordedAt: t,
			})
		}
	}

	for t := start; t.Before(end); t = t.Add(time.Hour) {
		sdnn := 45 + rng.Float64()*35
		rmssd := sdnn * (0.8 + rng.Float64()*0.3)
		night.HRV = append(night.HRV, domain.HRVReading{UserID: userID, SDNN: &sdnn, RMSSD: &rmssd, RecordedAt: t})
		night.Temperature = append(night.Temperature, domain.TemperatureReading{
			UserID:       userID,
			TemperatureC: 36.1 + rng.Float64()*0.6,
			RecordedAt:   t,
		})
	}
	for t := start; t.Before(end); t = t.Add(30 * time.Minute) {
		night.SpO2 = append(night.SpO2, domain.SpO2Reading{
			UserID:     userID,
			SpO2:       94 + rng.Float64()*5,
			RecordedAt: t,
		})
	}

	return night
}

// BuildDailySummary generates the device's daily rollup for day, carrying
// the total sleep of the night that started on it.
func BuildDailySummary(userID uuid.UUID, day time.Time, session domain.SleepSession, rng *rand.Rand) domain.DailySummary {
	steps := 4000 + rng.Intn(9000)
	sleepTotal := session.DeepMin + session.LightMin + session.RemMin
	hrAvg := 62 + rng.Intn(14)
	return domain.DailySummary{
		UserID:         userID,
		Date:           day.Format(domain.DateKeyLayout),
		TotalSteps:     steps,
		TotalDistanceM: float64(steps) * 0.75,
		TotalCalories:  float64(steps)*0.04 + 1500,
		SleepTotalMin:  &sleepTotal,
		HRAvg:          &hrAvg,
	}
}
