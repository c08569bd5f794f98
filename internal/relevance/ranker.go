package relevance

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/renovaverde/content-service/internal/models"
)

// DefaultRelatedCount is the size Related pads its result up to.
const DefaultRelatedCount = 3

const (
	titleMatchWeight = 3
	bodyMatchWeight  = 1
)

// Shuffler abstracts the randomness used for backfill so tests can supply a
// deterministic source.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type randShuffler struct {
	rng *rand.Rand
}

func (s randShuffler) Shuffle(n int, swap func(i, j int)) {
	s.rng.Shuffle(n, swap)
}

// NewSeededShuffler returns a Shuffler backed by math/rand with a fixed seed.
func NewSeededShuffler(seed int64) Shuffler {
	return randShuffler{rng: rand.New(rand.NewSource(seed))}
}

// Ranker scores and orders candidate articles against a current article.
// It performs no I/O; callers hand it an already-fetched, already-filtered
// candidate pool.
type Ranker struct {
	shuffler Shuffler
}

// NewRanker builds a Ranker. A nil shuffler falls back to a time-seeded one.
func NewRanker(shuffler Shuffler) *Ranker {
	if shuffler == nil {
		shuffler = NewSeededShuffler(time.Now().UnixNano())
	}
	return &Ranker{shuffler: shuffler}
}

// Score measures topical overlap between a keyword set and a candidate's
// text: 3 per keyword found in the title, 1 per keyword found only in the
// combined title+body, 0 otherwise.
func Score(keywords []string, candidateTitle, candidateBody string) int {
	title := strings.ToLower(candidateTitle)
	text := stripHTML(candidateTitle + " " + candidateBody)

	score := 0
	for _, keyword := range keywords {
		switch {
		case strings.Contains(title, keyword):
			score += titleMatchWeight
		case strings.Contains(text, keyword):
			score += bodyMatchWeight
		}
	}
	return score
}

type scoredArticle struct {
	article models.Article
	score   int
}

// Related returns up to n articles from pool ranked by relevance to current.
//
// Relevant candidates (score > 0) come first, ordered by descending score with
// ties keeping the pool's incoming order. When fewer than n are relevant the
// result is backfilled with randomly chosen zero-score candidates until n is
// reached or the pool runs out. The transient score never reaches the caller.
func (r *Ranker) Related(current *models.Article, pool []models.Article, n int) []models.Article {
	if n <= 0 {
		n = DefaultRelatedCount
	}

	keywords := ExtractKeywords(current.Title, current.Content)

	scored := make([]scoredArticle, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == current.ID {
			continue
		}
		scored = append(scored, scoredArticle{
			article: candidate,
			score:   Score(keywords, candidate.Title, candidate.Content),
		})
	}

	// Stable so candidates with equal scores keep the pool's recency order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	related := make([]models.Article, 0, n)
	var leftovers []models.Article
	for _, s := range scored {
		if s.score > 0 && len(related) < n {
			related = append(related, s.article)
		} else if s.score == 0 {
			leftovers = append(leftovers, s.article)
		}
	}

	if len(related) < n && len(leftovers) > 0 {
		r.shuffler.Shuffle(len(leftovers), func(i, j int) {
			leftovers[i], leftovers[j] = leftovers[j], leftovers[i]
		})
		for _, article := range leftovers {
			if len(related) == n {
				break
			}
			related = append(related, article)
		}
	}

	return related
}

// Newest returns the n most recently created pool articles excluding current,
// newest first. Identical timestamps keep their incoming relative order.
func (r *Ranker) Newest(current *models.Article, pool []models.Article, n int) []models.Article {
	if n <= 0 {
		n = DefaultRelatedCount
	}

	candidates := make([]models.Article, 0, len(pool))
	for _, candidate := range pool {
		if candidate.ID == current.ID {
			continue
		}
		candidates = append(candidates, candidate)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.After(candidates[j].CreatedAt)
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}
