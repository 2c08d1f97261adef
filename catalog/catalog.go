// Package catalog holds the in-memory product catalog and its transaction
// source. Products are loaded once at startup from Postgres or a local CSV
// export; per-product transactions are fetched lazily and cached.
package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/arpitmittal98/shopsight/models"
	"github.com/arpitmittal98/shopsight/utils"
)

// Store is the read-only product catalog shared by all handlers. The only
// mutable state is the transaction cache, guarded by its own mutex.
type Store struct {
	products []models.Product
	byID     map[int]models.Product

	pool *pgxpool.Pool

	txnMu    sync.Mutex
	txnCache map[int][]models.TransactionRecord

	demographics models.Demographics
}

// SearchParams are the structured filters for a product search.
type SearchParams struct {
	Query      string
	Category   string
	Color      string
	Department string
	Limit      int
}

// LoadFromPostgres loads the full article catalog from the articles table.
func LoadFromPostgres(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	query := `
		SELECT article_id, prod_name, product_type_name, product_group_name,
		       colour_group_name, department_name, section_name, garment_group_name, image_url
		FROM articles
		ORDER BY article_id
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load articles: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ArticleID, &p.ProdName, &p.ProductTypeName, &p.ProductGroupName,
			&p.ColourGroupName, &p.DepartmentName, &p.SectionName, &p.GarmentGroupName, &p.ImageURL); err != nil {
			log.Printf("⚠️ [CATALOG] Error scanning article: %v", err)
			continue
		}
		products = append(products, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("failed reading articles: %w", rows.Err())
	}

	log.Printf("✅ [CATALOG] Loaded %d products from Postgres", len(products))
	return newStore(products, pool), nil
}

// LoadFromCSV loads the catalog from a local CSV export with the article
// columns in its header row. Used when no database is configured.
func LoadFromCSV(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	if len(records) < 1 {
		return nil, fmt.Errorf("catalog file %s is empty", path)
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	if _, ok := col["article_id"]; !ok {
		return nil, fmt.Errorf("catalog file %s has no article_id column", path)
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var products []models.Product
	for _, row := range records[1:] {
		id, err := strconv.Atoi(field(row, "article_id"))
		if err != nil {
			log.Printf("⚠️ [CATALOG] Skipping row with bad article_id: %v", err)
			continue
		}
		products = append(products, models.Product{
			ArticleID:        id,
			ProdName:         field(row, "prod_name"),
			ProductTypeName:  field(row, "product_type_name"),
			ProductGroupName: field(row, "product_group_name"),
			ColourGroupName:  field(row, "colour_group_name"),
			DepartmentName:   field(row, "department_name"),
			SectionName:      field(row, "section_name"),
			GarmentGroupName: field(row, "garment_group_name"),
			ImageURL:         field(row, "image_url"),
		})
	}

	log.Printf("✅ [CATALOG] Loaded %d products from %s", len(products), path)
	return newStore(products, nil), nil
}

func newStore(products []models.Product, pool *pgxpool.Pool) *Store {
	sort.Slice(products, func(i, j int) bool { return products[i].ArticleID < products[j].ArticleID })

	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ArticleID] = p
	}
	return &Store{
		products:     products,
		byID:         byID,
		pool:         pool,
		txnCache:     make(map[int][]models.TransactionRecord),
		demographics: generateDemographics(),
	}
}

// ProductByID looks up a single article.
func (s *Store) ProductByID(articleID int) (models.Product, bool) {
	p, ok := s.byID[articleID]
	return p, ok
}

// Count returns the catalog size.
func (s *Store) Count() int { return len(s.products) }

// Search filters the catalog by structured filters and free-text keywords.
// Keywords already covered by the category or colour filter are skipped so
// a parsed query like "red dress" still matches once its words have become
// filters. Results keep ascending article-id order.
func (s *Store) Search(params SearchParams) []models.Product {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}

	keywords := searchKeywords(params)

	results := make([]models.Product, 0, limit)
	for _, p := range s.products {
		// Category may name a type ("Dress") or a group ("Shoes").
		if params.Category != "" &&
			!utils.ContainsFold(p.ProductTypeName, params.Category) &&
			!utils.ContainsFold(p.ProductGroupName, params.Category) {
			continue
		}
		if params.Color != "" && !utils.ContainsFold(p.ColourGroupName, params.Color) {
			continue
		}
		if params.Department != "" && !utils.ContainsFold(p.DepartmentName, params.Department) {
			continue
		}
		if !matchesKeywords(p, keywords) {
			continue
		}
		results = append(results, p)
		if len(results) == limit {
			break
		}
	}
	return results
}

func searchKeywords(params SearchParams) []string {
	var keywords []string
	for _, kw := range strings.Fields(params.Query) {
		if params.Category != "" && utils.ContainsFold(params.Category, kw) {
			continue
		}
		if params.Color != "" && utils.ContainsFold(params.Color, kw) {
			continue
		}
		keywords = append(keywords, kw)
	}
	return keywords
}

func matchesKeywords(p models.Product, keywords []string) bool {
	for _, kw := range keywords {
		if !utils.ContainsFold(p.ProdName, kw) &&
			!utils.ContainsFold(p.ProductTypeName, kw) &&
			!utils.ContainsFold(p.ProductGroupName, kw) {
			return false
		}
	}
	return true
}

// Categories returns the distinct product type names, sorted.
func (s *Store) Categories() []string { return s.distinct(func(p models.Product) string { return p.ProductTypeName }) }

// Colors returns the distinct colour group names, sorted.
func (s *Store) Colors() []string { return s.distinct(func(p models.Product) string { return p.ColourGroupName }) }

// Departments returns the distinct department names, sorted.
func (s *Store) Departments() []string { return s.distinct(func(p models.Product) string { return p.DepartmentName }) }

func (s *Store) distinct(pick func(models.Product) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, p := range s.products {
		v := pick(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Transactions returns the purchase rows for a product, fetching from
// Postgres on first request and caching the result. A store without a
// database, or a product without rows, yields nil — the analytics layer
// treats that as "generate mock data", not as an error.
func (s *Store) Transactions(ctx context.Context, articleID int) []models.TransactionRecord {
	if s.pool == nil {
		return nil
	}

	s.txnMu.Lock()
	if cached, ok := s.txnCache[articleID]; ok {
		s.txnMu.Unlock()
		return cached
	}
	s.txnMu.Unlock()

	query := `
		SELECT article_id, customer_id, t_dat, price, sales_channel_id
		FROM transactions
		WHERE article_id = $1
		ORDER BY t_dat
	`
	rows, err := s.pool.Query(ctx, query, articleID)
	if err != nil {
		log.Printf("❌ [CATALOG] Error querying transactions for %d: %v", articleID, err)
		return nil
	}
	defer rows.Close()

	var transactions []models.TransactionRecord
	for rows.Next() {
		var t models.TransactionRecord
		if err := rows.Scan(&t.ArticleID, &t.CustomerID, &t.Date, &t.Price, &t.SalesChannelID); err != nil {
			log.Printf("⚠️ [CATALOG] Error scanning transaction: %v", err)
			continue
		}
		transactions = append(transactions, t)
	}

	s.txnMu.Lock()
	s.txnCache[articleID] = transactions
	s.txnMu.Unlock()

	log.Printf("📦 [CATALOG] Cached %d transactions for product %d", len(transactions), articleID)
	return transactions
}

// Demographics returns the aggregate customer snapshot.
func (s *Store) Demographics() models.Demographics { return s.demographics }

// generateDemographics builds a synthetic 1000-customer population with a
// fixed seed so the snapshot is stable across restarts.
func generateDemographics() models.Demographics {
	rng := rand.New(rand.NewSource(42))

	clubStatuses := []string{"ACTIVE", "PRE-CREATE", "LEFT CLUB"}
	newsFrequencies := []string{"NONE", "Regularly", "Monthly"}

	const customers = 1000
	ageCounts := make(map[int]int)
	club := make(map[string]int)
	news := make(map[string]int)
	var ageSum int
	for i := 0; i < customers; i++ {
		age := 18 + rng.Intn(52)
		ageSum += age
		ageCounts[age]++
		club[clubStatuses[rng.Intn(len(clubStatuses))]]++
		news[newsFrequencies[rng.Intn(len(newsFrequencies))]]++
	}

	return models.Demographics{
		TotalCustomers:       customers,
		AvgAge:               float64(ageSum) / customers,
		AgeDistribution:      topAges(ageCounts, 10),
		ClubMembers:          club,
		FashionNewsFrequency: news,
	}
}

// topAges keeps the n most common ages, keyed by the age as a string.
func topAges(counts map[int]int, n int) map[string]int {
	ages := make([]int, 0, len(counts))
	for age := range counts {
		ages = append(ages, age)
	}
	sort.Slice(ages, func(i, j int) bool {
		if counts[ages[i]] != counts[ages[j]] {
			return counts[ages[i]] > counts[ages[j]]
		}
		return ages[i] < ages[j]
	})
	if len(ages) > n {
		ages = ages[:n]
	}

	top := make(map[string]int, len(ages))
	for _, age := range ages {
		top[strconv.Itoa(age)] = counts[age]
	}
	return top
}

// NewStore builds a store over an already-materialized product slice with
// no database attached. Useful for tests and embedded catalogs.
func NewStore(products []models.Product) *Store {
	return newStore(products, nil)
}
