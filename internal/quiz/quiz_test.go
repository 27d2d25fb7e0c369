package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luvera_back_end/internal/cart"
)

func TestAdvanceRequiresAnswer(t *testing.T) {
	s := NewSession()

	_, err := s.Advance()
	assert.ErrorIs(t, err, ErrUnanswered)

	s = s.Answer("skinType", []string{"dry"})
	s, err = s.Advance()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Step)
	assert.False(t, s.Done)
}

func TestAdvanceRejectsEmptyMultipleChoice(t *testing.T) {
	s := NewSession()
	s = s.Answer("skinType", []string{"oily"})
	s, err := s.Advance()
	require.NoError(t, err)
	require.Equal(t, "concerns", s.Current().ID)

	// un ensemble vide n'est pas une réponse
	s = s.Answer("concerns", nil)
	_, err = s.Advance()
	assert.ErrorIs(t, err, ErrUnanswered)

	s = s.Answer("concerns", []string{"acne"})
	_, err = s.Advance()
	assert.NoError(t, err)
}

func completedSession(t *testing.T) Session {
	t.Helper()
	s := NewSession()
	answers := map[string][]string{
		"skinType":  {"combination"},
		"concerns":  {"acne", "pores", "dullness", "aging"},
		"routine":   {"moderate"},
		"goals":     {"clear"},
		"lifestyle": {"makeup", "stress"},
	}
	for range Questions {
		s = s.Answer(s.Current().ID, answers[s.Current().ID])
		next, err := s.Advance()
		require.NoError(t, err)
		s = next
	}
	return s
}

func TestFullRunEndsOnResults(t *testing.T) {
	s := completedSession(t)
	assert.True(t, s.Done)
	assert.Equal(t, len(Questions)-1, s.Step)
}

func TestPreviousKeepsLaterAnswers(t *testing.T) {
	s := NewSession()
	s = s.Answer("skinType", []string{"dry"})
	s, err := s.Advance()
	require.NoError(t, err)
	s = s.Answer("concerns", []string{"dryness"})

	s = s.Previous()
	assert.Equal(t, 0, s.Step)
	// la réponse de l'étape suivante survit au retour en arrière
	assert.Equal(t, []string{"dryness"}, s.Answers["concerns"])

	// modifier une réponse antérieure ne touche pas les suivantes
	s = s.Answer("skinType", []string{"sensitive"})
	assert.Equal(t, []string{"dryness"}, s.Answers["concerns"])
}

func TestPreviousStopsAtFirstQuestion(t *testing.T) {
	s := NewSession()
	s = s.Previous()
	assert.Equal(t, 0, s.Step)
}

func TestRestartClearsEverything(t *testing.T) {
	s := completedSession(t)
	s = s.Restart()
	assert.Equal(t, 0, s.Step)
	assert.False(t, s.Done)
	assert.Empty(t, s.Answers)
}

func TestAnswerDoesNotMutateOriginal(t *testing.T) {
	s1 := NewSession()
	s2 := s1.Answer("skinType", []string{"oily"})

	assert.Empty(t, s1.Answers)
	assert.Equal(t, []string{"oily"}, s2.Answers["skinType"])
}

func TestDeriveIsDeterministic(t *testing.T) {
	s := completedSession(t)

	r1 := Derive(s.Answers)
	r2 := Derive(s.Answers)
	assert.Equal(t, r1, r2)

	assert.Equal(t, "combination", r1.SkinType)
	// seules les trois premières préoccupations sont affichées
	assert.Equal(t, []string{"acne", "pores", "dullness"}, r1.PrimaryConcerns)
	require.Len(t, r1.Products, 4)
	assert.InDelta(t, 163.0, r1.TotalValue, 0.001)
	assert.InDelta(t, 138.0, r1.SubscriptionPrice, 0.001)

	sum := 0.0
	for _, p := range r1.Products {
		sum += p.Price
	}
	assert.InDelta(t, r1.TotalValue, sum, 0.001)

	assert.Equal(t, []string{"Cleanser", "Serum", "Moisturizer with SPF"}, r1.Routine.Morning)
	assert.Equal(t, []string{"Cleanser", "Night Treatment", "Night Moisturizer"}, r1.Routine.Evening)
}

func TestDeriveWithPartialAnswers(t *testing.T) {
	r := Derive(Answers{})
	assert.Empty(t, r.SkinType)
	assert.Empty(t, r.PrimaryConcerns)
	assert.Len(t, r.Products, 4)
}

// memoryStorage minimal pour exercer AddAllToCart contre un vrai Store
type memoryStorage struct{ data map[string][]byte }

func (m *memoryStorage) Get(_ context.Context, key string) ([]byte, error) { return m.data[key], nil }
func (m *memoryStorage) Set(_ context.Context, key string, data []byte) error {
	m.data[key] = data
	return nil
}

func TestAddAllToCartNeverMerges(t *testing.T) {
	ctx := context.Background()
	store := cart.NewStore(ctx, &memoryStorage{data: map[string][]byte{}}, "cart:quiz")

	// une ligne manuelle préexistante pour le même produit
	store.AddItem(ctx, cart.Item{ID: "manuel", ProductID: "2", Name: "Vitamin C Brightening Serum", Price: 45})

	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	r := Derive(Answers{"skinType": {"dry"}})
	AddAllToCart(ctx, store, r.Products, false, now)

	// insertion directe hors clé de fusion : 1 ligne manuelle + 4 du bundle
	assert.Len(t, store.Items(), 5)
	assert.Equal(t, 5, store.TotalItems())
}

func TestAddAllToCartSubscriptionPricing(t *testing.T) {
	ctx := context.Background()
	store := cart.NewStore(ctx, &memoryStorage{data: map[string][]byte{}}, "cart:quiz")

	now := time.Now()
	r := Derive(Answers{})
	AddAllToCart(ctx, store, r.Products, true, now)

	items := store.Items()
	require.Len(t, items, 4)
	for _, item := range items {
		assert.True(t, item.IsSubscription)
		assert.Equal(t, cart.FrequencyMonthly, item.SubscriptionFrequency)
	}

	// remise ligne par ligne : 163 × 0.85 = 138.55, là où le bundle affiche 138
	assert.InDelta(t, 138.55, store.TotalPrice(), 0.001)
}

func TestBundleItemIDFormat(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	item := BundleItem(bundleProducts[0], true, now)
	assert.Equal(t, "1-sub-1700000000000", item.ID)

	item = BundleItem(bundleProducts[0], false, now)
	assert.Equal(t, "1-one-time-1700000000000", item.ID)
	assert.Empty(t, item.SubscriptionFrequency)
}
