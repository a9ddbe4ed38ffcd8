package plan

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"nutriplan/database"
	"nutriplan/models"
	"nutriplan/services/profile"
	"nutriplan/structs"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
)

type recordingPublisher struct {
	events []structs.EventModel
}

func (r *recordingPublisher) PublishEvent(event structs.EventModel) error {
	r.events = append(r.events, event)
	return nil
}

type fixture struct {
	db        *gorm.DB
	profiles  *profile.ProfileService
	plans     *PlanService
	publisher *recordingPublisher
	effects   map[string]int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := database.InitDatabasePool(structs.DatabaseConfig{Client: database.ClientSqlite})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := database.SeedEffects(db, []string{"Cut", "Bulk"}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	logger := logrus.New()
	logger.Out = io.Discard

	f := &fixture{db: db, publisher: &recordingPublisher{}, effects: map[string]int64{}}
	f.profiles = profile.NewProfileService(db, logger)
	f.plans = NewPlanService(db, f.profiles, nil, f.publisher, logger)

	var effects []models.Effect
	if err := db.Find(&effects).Error; err != nil {
		t.Fatalf("effects: %v", err)
	}
	for _, e := range effects {
		f.effects[e.Name] = e.ID
	}
	return f
}

func (f *fixture) dish(t *testing.T, name string, effects ...string) models.Dish {
	t.Helper()
	d := models.Dish{Name: name}
	if err := f.db.Create(&d).Error; err != nil {
		t.Fatalf("create dish: %v", err)
	}
	for _, e := range effects {
		if err := f.db.Create(&models.DishHasEffect{DishID: d.ID, EffectID: f.effects[e]}).Error; err != nil {
			t.Fatalf("tag dish: %v", err)
		}
	}
	return d
}

func (f *fixture) user(t *testing.T, userID uint, effects ...string) {
	t.Helper()
	if _, err := f.profiles.Save(userID, structs.ProfileParam{Name: "Anna", WeightKg: "70"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}
	for _, e := range effects {
		if err := f.profiles.AddEffect(userID, strconv.FormatInt(f.effects[e], 10)); err != nil {
			t.Fatalf("add effect: %v", err)
		}
	}
}

func (f *fixture) count(t *testing.T, userID uint) int {
	t.Helper()
	var n int
	if err := f.db.Model(&models.PlanEntry{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestGenerateValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.plans.Generate(ctx, 1, date(t, "2024-01-02"), date(t, "2024-01-01")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("inverted: want=ErrInvalidRange got=%v", err)
	}
	if _, err := f.plans.Generate(ctx, 1, date(t, "2024-01-01"), date(t, "2024-01-02")); !errors.Is(err, ErrProfileMissing) {
		t.Fatalf("no profile: want=ErrProfileMissing got=%v", err)
	}
	f.user(t, 1)
	if _, err := f.plans.Generate(ctx, 1, date(t, "2024-01-01"), date(t, "2024-01-02")); !errors.Is(err, ErrNoGoalSelected) {
		t.Fatalf("no goal: want=ErrNoGoalSelected got=%v", err)
	}
	if err := f.profiles.AddEffect(1, strconv.FormatInt(f.effects["Cut"], 10)); err != nil {
		t.Fatalf("add effect: %v", err)
	}
	f.dish(t, "Steak", "Bulk")
	if _, err := f.plans.Generate(ctx, 1, date(t, "2024-01-01"), date(t, "2024-01-02")); !errors.Is(err, ErrNoMatchingDishes) {
		t.Fatalf("no dishes: want=ErrNoMatchingDishes got=%v", err)
	}
}

func TestGenerateScenarioAndExport(t *testing.T) {
	f := newFixture(t)
	f.dish(t, "Soup", "Cut")
	f.dish(t, "Salad", "Cut", "Bulk")
	f.dish(t, "Steak", "Bulk")
	f.user(t, 1, "Cut")

	created, err := f.plans.Generate(context.Background(), 1, date(t, "2024-01-01"), date(t, "2024-01-02"))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if created != 6 || f.count(t, 1) != 6 {
		t.Fatalf("created: want=6 got=%d stored=%d", created, f.count(t, 1))
	}

	rows, err := f.plans.Export(1, "2024-01-01", "2024-01-02")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	want := [][3]string{
		{"Montag", "Morgen", "Salad"},
		{"Montag", "Mittag", "Soup"},
		{"Montag", "Abend", "Salad"},
		{"Dienstag", "Morgen", "Soup"},
		{"Dienstag", "Mittag", "Salad"},
		{"Dienstag", "Abend", "Soup"},
	}
	for i, w := range want {
		if rows[i].Weekday != w[0] || rows[i].Meal != w[1] || rows[i].Dish != w[2] {
			t.Fatalf("row %d: want=%v got=%+v", i, w, rows[i])
		}
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("csv lines: want=7 got=%d\n%s", len(lines), buf.String())
	}
	if lines[0] != "Tag,Mahlzeit,Gericht,Von,Bis" || lines[1] != "Montag,Morgen,Salad,2024-01-01,2024-01-02" {
		t.Fatalf("csv head: got=%q / %q", lines[0], lines[1])
	}

	if len(f.publisher.events) != 1 || f.publisher.events[0].Created != 6 {
		t.Fatalf("events: got=%+v", f.publisher.events)
	}
	var logs int
	f.db.Model(&models.ActivityLog{}).Where("log_name = ?", "plan.generate").Count(&logs)
	if logs != 1 {
		t.Fatalf("activity log rows: want=1 got=%d", logs)
	}
}

func TestGenerateIsIdempotentPerRange(t *testing.T) {
	f := newFixture(t)
	f.dish(t, "Soup", "Cut")
	f.user(t, 1, "Cut")
	f.user(t, 2, "Cut")
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := f.plans.Generate(ctx, 1, date(t, "2024-01-01"), date(t, "2024-01-07")); err != nil {
			t.Fatalf("Generate #%d: %v", i, err)
		}
	}
	if got := f.count(t, 1); got != 21 {
		t.Fatalf("after regenerate: want=21 got=%d", got)
	}

	// another range and another user are left alone
	if _, err := f.plans.Generate(ctx, 1, date(t, "2024-01-08"), date(t, "2024-01-08")); err != nil {
		t.Fatalf("Generate other range: %v", err)
	}
	if _, err := f.plans.Generate(ctx, 2, date(t, "2024-01-01"), date(t, "2024-01-07")); err != nil {
		t.Fatalf("Generate other user: %v", err)
	}
	if _, err := f.plans.Generate(ctx, 1, date(t, "2024-01-01"), date(t, "2024-01-07")); err != nil {
		t.Fatalf("Generate again: %v", err)
	}
	if got := f.count(t, 1); got != 24 {
		t.Fatalf("user 1: want=24 got=%d", got)
	}
	if got := f.count(t, 2); got != 21 {
		t.Fatalf("user 2: want=21 got=%d", got)
	}

	rows, err := f.plans.List(1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 24 || rows[0].PlanDate != "2024-01-01" || rows[23].PlanDate != "2024-01-08" {
		t.Fatalf("list order: first=%+v last=%+v", rows[0], rows[len(rows)-1])
	}
}

func TestGenerateWithoutDishesKeepsPreviousPlan(t *testing.T) {
	f := newFixture(t)
	soup := f.dish(t, "Soup", "Cut")
	f.user(t, 1, "Cut")
	ctx := context.Background()

	if _, err := f.plans.Generate(ctx, 1, date(t, "2024-01-01"), date(t, "2024-01-03")); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if err := f.db.Where("dish_id = ?", soup.ID).Delete(&models.DishHasEffect{}).Error; err != nil {
		t.Fatalf("untag: %v", err)
	}
	if _, err := f.plans.Generate(ctx, 1, date(t, "2024-01-01"), date(t, "2024-01-03")); !errors.Is(err, ErrNoMatchingDishes) {
		t.Fatalf("want=ErrNoMatchingDishes got=%v", err)
	}
	if got := f.count(t, 1); got != 9 {
		t.Fatalf("previous plan: want=9 got=%d", got)
	}
}

func TestExportOrdersByWeekday(t *testing.T) {
	f := newFixture(t)
	f.dish(t, "Soup", "Cut")
	f.user(t, 1, "Cut")

	// Saturday to Tuesday
	if _, err := f.plans.Generate(context.Background(), 1, date(t, "2024-01-06"), date(t, "2024-01-09")); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	rows, err := f.plans.Export(1, "2024-01-06", "2024-01-09")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var days []string
	for i := 0; i < len(rows); i += 3 {
		days = append(days, rows[i].Weekday)
	}
	if strings.Join(days, ",") != "Montag,Dienstag,Samstag,Sonntag" {
		t.Fatalf("weekday order: got=%v", days)
	}
}

func TestEligibleDishesDistinctAndSorted(t *testing.T) {
	f := newFixture(t)
	f.dish(t, "Zucchini", "Cut", "Bulk")
	f.dish(t, "Apfel", "Bulk")
	f.dish(t, "Brot")

	dishes, err := f.plans.EligibleDishes([]int64{f.effects["Cut"], f.effects["Bulk"]})
	if err != nil {
		t.Fatalf("EligibleDishes: %v", err)
	}
	if len(dishes) != 2 || dishes[0].Name != "Apfel" || dishes[1].Name != "Zucchini" {
		t.Fatalf("dishes: got=%+v", dishes)
	}
}
