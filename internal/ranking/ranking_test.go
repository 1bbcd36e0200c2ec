package ranking

import (
	"math/rand"
	"reflect"
	"testing"

	model "github.com/viftode4/partydrinks/internal/models"
	"github.com/viftode4/partydrinks/internal/points"
)

func u(id string) model.User {
	return model.User{ID: id, Username: "user-" + id}
}

func drink(userID, drinkType string, pts int) model.DrinkEvent {
	return model.DrinkEvent{UserID: userID, DrinkType: drinkType, Points: pts}
}

func cig(userID string, count int) model.CigaretteEvent {
	return model.CigaretteEvent{UserID: userID, Count: count}
}

// Scénario de référence : A boit une bière (2) et un vin (3), B deux bières (2+2).
func fixture() ([]model.User, []model.DrinkEvent, []model.CigaretteEvent) {
	users := []model.User{u("a"), u("b"), u("c")}
	drinks := []model.DrinkEvent{
		drink("a", "Beer", 2),
		drink("a", "Wine", 3),
		drink("b", "Beer", 2),
		drink("b", "Beer", 2),
	}
	cigarettes := []model.CigaretteEvent{cig("b", 1), cig("b", 1)}
	return users, drinks, cigarettes
}

func TestComputeAllFilter(t *testing.T) {
	users, drinks, cigarettes := fixture()
	entries := Compute(users, drinks, cigarettes, FilterAll, nil)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries (c has no score), got %d", len(entries))
	}
	if entries[0].UserID != "a" || entries[0].TotalPoints != 5 || entries[0].Rank != 1 {
		t.Fatalf("expected a first with 5 points, got %+v", entries[0])
	}
	if entries[1].UserID != "b" || entries[1].TotalPoints != 4 || entries[1].Rank != 2 {
		t.Fatalf("expected b second with 4 points, got %+v", entries[1])
	}
	// Le compteur cigarettes est informatif quel que soit le filtre
	if entries[1].CigaretteCount != 2 {
		t.Fatalf("expected b to show 2 cigarettes, got %d", entries[1].CigaretteCount)
	}
}

func TestComputeCategoryFilter(t *testing.T) {
	users, drinks, cigarettes := fixture()
	entries := Compute(users, drinks, cigarettes, "Beer", nil)

	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].UserID != "b" || entries[0].TotalPoints != 4 {
		t.Fatalf("B leads the Beer board with 4, got %+v", entries[0])
	}
	if entries[1].UserID != "a" || entries[1].TotalPoints != 2 {
		t.Fatalf("A is second on Beer with 2, got %+v", entries[1])
	}
}

func TestComputeCigaretteFilter(t *testing.T) {
	users, drinks, cigarettes := fixture()
	entries := Compute(users, drinks, cigarettes, FilterCigarettes, nil)

	if len(entries) != 1 {
		t.Fatalf("only b smoked, got %d entries", len(entries))
	}
	if entries[0].UserID != "b" || entries[0].TotalPoints != 2 || entries[0].Rank != 1 {
		t.Fatalf("got %+v", entries[0])
	}
}

func TestChampionBadges(t *testing.T) {
	users, drinks, cigarettes := fixture()
	entries := Compute(users, drinks, cigarettes, FilterAll, nil)

	byID := map[string]model.LeaderboardEntry{}
	for _, e := range entries {
		byID[e.UserID] = e
	}

	// Champion Beer = B (4 > 2), Wine = A, Cigarette = B ; les badges sont
	// attachés indépendamment du filtre actif.
	if !reflect.DeepEqual(byID["a"].Champions, []string{"Wine"}) {
		t.Fatalf("a champions = %v, want [Wine]", byID["a"].Champions)
	}
	if !reflect.DeepEqual(byID["b"].Champions, []string{"Beer", points.CigaretteKind}) {
		t.Fatalf("b champions = %v, want [Beer Cigarette]", byID["b"].Champions)
	}
}

func TestChampionStrictness(t *testing.T) {
	// Égalité parfaite sur Beer : le premier dans l'ordre d'entrée garde le badge
	users := []model.User{u("a"), u("b")}
	drinks := []model.DrinkEvent{
		drink("a", "Beer", 4),
		drink("b", "Beer", 4),
	}
	entries := Compute(users, drinks, nil, FilterAll, nil)

	badged := 0
	for _, e := range entries {
		if len(e.Champions) > 0 {
			badged++
			if e.UserID != "a" {
				t.Fatalf("first-seen user must keep the badge, got %s", e.UserID)
			}
		}
	}
	if badged != 1 {
		t.Fatalf("exactly one champion expected, got %d", badged)
	}
}

func TestNoChampionWhenMaxIsZero(t *testing.T) {
	users := []model.User{u("a")}
	entries := Compute(users, nil, nil, FilterAll, nil)
	if len(entries) != 0 {
		t.Fatalf("no events means empty board, got %d entries", len(entries))
	}

	// Un score présent dans une catégorie ne crée pas de champion ailleurs
	entries = Compute(users, []model.DrinkEvent{drink("a", "Beer", 2)}, nil, FilterAll, nil)
	if !reflect.DeepEqual(entries[0].Champions, []string{"Beer"}) {
		t.Fatalf("champions = %v, want [Beer] only", entries[0].Champions)
	}
}

func TestZeroScoreExclusion(t *testing.T) {
	users, drinks, cigarettes := fixture()

	// c n'a aucun événement : jamais présent, quel que soit le filtre
	for _, filter := range []string{FilterAll, FilterCigarettes, "Beer", "Wine", "Cocktail", "Shot"} {
		for _, e := range Compute(users, drinks, cigarettes, filter, nil) {
			if e.UserID == "c" {
				t.Fatalf("zero-score user leaked into filter %q", filter)
			}
		}
	}

	// a n'a pas fumé : absent du classement cigarettes malgré ses points
	for _, e := range Compute(users, drinks, cigarettes, FilterCigarettes, nil) {
		if e.UserID == "a" {
			t.Fatal("a has no cigarettes and must not rank there")
		}
	}
}

func TestStableTieOrder(t *testing.T) {
	users := []model.User{u("x"), u("y"), u("z")}
	drinks := []model.DrinkEvent{
		drink("x", "Beer", 2),
		drink("y", "Beer", 2),
		drink("z", "Beer", 2),
	}
	entries := Compute(users, drinks, nil, FilterAll, nil)

	// À égalité, l'ordre d'entrée est conservé et les rangs restent denses
	want := []string{"x", "y", "z"}
	for i, e := range entries {
		if e.UserID != want[i] || e.Rank != i+1 {
			t.Fatalf("entry %d = %s rank %d, want %s rank %d", i, e.UserID, e.Rank, want[i], i+1)
		}
	}
}

func TestPreviousRankCarriedOver(t *testing.T) {
	users, drinks, cigarettes := fixture()

	first := Compute(users, drinks, cigarettes, FilterAll, nil)
	if first[0].PreviousRank != 0 {
		t.Fatalf("no snapshot yet, previous rank must be 0, got %d", first[0].PreviousRank)
	}

	// B double sa mise : il passe premier, son rang précédent était 2
	drinks = append(drinks, drink("b", "Shot", 4))
	second := Compute(users, drinks, cigarettes, FilterAll, Ranks(first))
	if second[0].UserID != "b" || second[0].PreviousRank != 2 {
		t.Fatalf("expected b first with previous rank 2, got %+v", second[0])
	}
	if second[1].UserID != "a" || second[1].PreviousRank != 1 {
		t.Fatalf("expected a second with previous rank 1, got %+v", second[1])
	}
}

func TestComputeIsIdempotent(t *testing.T) {
	users, drinks, cigarettes := fixture()
	first := Compute(users, drinks, cigarettes, FilterAll, nil)
	second := Compute(users, drinks, cigarettes, FilterAll, nil)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same history, different output:\n%+v\n%+v", first, second)
	}
}

// Propriété : somme des points + densité des rangs sur des historiques aléatoires
func TestRandomHistories(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pointValues := map[string]int{"Beer": 2, "Wine": 3, "Cocktail": 4, "Shot": 4}

	for trial := 0; trial < 50; trial++ {
		nUsers := 1 + rng.Intn(8)
		users := make([]model.User, nUsers)
		for i := range users {
			users[i] = u(string(rune('a' + i)))
		}

		var drinks []model.DrinkEvent
		var cigarettes []model.CigaretteEvent
		for i := 0; i < rng.Intn(60); i++ {
			who := users[rng.Intn(nUsers)].ID
			if rng.Intn(5) == 0 {
				cigarettes = append(cigarettes, cig(who, 1))
				continue
			}
			cat := points.Categories[rng.Intn(len(points.Categories))]
			drinks = append(drinks, drink(who, cat, pointValues[cat]))
		}

		for _, filter := range append([]string{FilterAll, FilterCigarettes}, points.Categories...) {
			entries := Compute(users, drinks, cigarettes, filter, nil)

			for i, e := range entries {
				// Rangs denses 1..N, scores décroissants
				if e.Rank != i+1 {
					t.Fatalf("trial %d filter %s: rank %d at index %d", trial, filter, e.Rank, i)
				}
				if i > 0 && entries[i-1].TotalPoints < e.TotalPoints {
					t.Fatalf("trial %d filter %s: scores not descending", trial, filter)
				}
				if e.TotalPoints == 0 {
					t.Fatalf("trial %d filter %s: zero score ranked", trial, filter)
				}

				// Invariant de somme recalculé naïvement
				want := 0
				switch filter {
				case FilterAll:
					for _, d := range drinks {
						if d.UserID == e.UserID {
							want += d.Points
						}
					}
				case FilterCigarettes:
					for _, c := range cigarettes {
						if c.UserID == e.UserID {
							want += c.Count
						}
					}
				default:
					for _, d := range drinks {
						if d.UserID == e.UserID && d.DrinkType == filter {
							want += d.Points
						}
					}
				}
				if e.TotalPoints != want {
					t.Fatalf("trial %d filter %s user %s: score %d, want %d", trial, filter, e.UserID, e.TotalPoints, want)
				}
			}
		}
	}
}

func TestValidFilter(t *testing.T) {
	for _, f := range []string{FilterAll, FilterCigarettes, "Beer", "Wine", "Cocktail", "Shot"} {
		if !ValidFilter(f) {
			t.Fatalf("filter %q should be valid", f)
		}
	}
	for _, f := range []string{"", "beer", "Cigarette", "points"} {
		if ValidFilter(f) {
			t.Fatalf("filter %q should be rejected", f)
		}
	}
}
