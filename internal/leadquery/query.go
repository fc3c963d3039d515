// Package leadquery turns lead listing parameters into a tenant-scoped
// MongoDB filter, sort and pagination window.
//
// Every parameter except the tenant and campaign is coerced rather than
// rejected: unknown sort fields fall back to createdTime, out-of-range page
// sizes are clamped and unparseable dates take their defaults.
package leadquery

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ArowuTest/leadcapture-backend/internal/apperrors"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultCount     = 20
	MaxCount         = 100
	DefaultPage      = 1
	DefaultStartDate = "1960-01-01"
	DefaultSortBy    = "createdTime"

	SortAsc  = "asc"
	SortDesc = "desc"

	dateLayout = "2006-01-02"
)

// allowedSortFields are the indexed fields a listing may be ordered by.
var allowedSortFields = map[string]struct{}{
	"createdTime":     {},
	"createdAt":       {},
	"updatedAt":       {},
	"priority":        {},
	"contactAttempts": {},
}

// searchFields are matched by the free-text query.
var searchFields = []string{
	"content.firstName",
	"content.lastName",
	"content.fullName",
	"content.name",
	"content.email",
	"content.phone",
	"content.phoneNumber",
	"content.whatsapp",
	"WhatsApp",
	"previousSite",
}

// RawParams are the listing parameters exactly as received.
type RawParams struct {
	CompanyID  string
	CampaignID string
	StartDate  string
	EndDate    string
	Query      string
	Count      string
	Page       string
	SortBy     string
	SortOrder  string
	BadgeList  string
}

// Query is a normalized lead listing request.
type Query struct {
	CompanyID  string
	CampaignID string
	StartDate  time.Time
	EndDate    time.Time
	Text       string
	Count      int64
	Page       int64
	SortBy     string
	SortOrder  string
	Badges     []string
}

// Normalize validates and coerces raw parameters for the given caller.
// now and loc decide what "today" is and how date-only values are read.
func Normalize(raw RawParams, caller *models.Identity, now time.Time, loc *time.Location) (Query, error) {
	if caller == nil {
		return Query{}, fmt.Errorf("caller identity is required: %w", apperrors.ErrUnauthorized)
	}
	if loc == nil {
		loc = time.Local
	}

	q := Query{
		CompanyID:  ResolveCompanyID(raw.CompanyID, caller),
		CampaignID: strings.TrimSpace(raw.CampaignID),
	}
	if q.CompanyID == "" || q.CampaignID == "" {
		return Query{}, fmt.Errorf("companyId and campaignId are required: %w", apperrors.ErrValidation)
	}

	defaultStart, _ := time.ParseInLocation(dateLayout, DefaultStartDate, loc)
	start, ok := ParseDate(raw.StartDate, loc)
	if !ok {
		start = defaultStart
	}
	end, ok := ParseDate(raw.EndDate, loc)
	if !ok {
		end = now
	}
	q.StartDate = start
	q.EndDate = EndOfDay(end, loc)

	q.Text = strings.TrimSpace(raw.Query)
	q.Count = clamp(parseLeadingInt(raw.Count, DefaultCount), 1, MaxCount)
	q.Page = clamp(parseLeadingInt(raw.Page, DefaultPage), 1, -1)

	q.SortBy = strings.TrimSpace(raw.SortBy)
	if _, allowed := allowedSortFields[q.SortBy]; !allowed {
		q.SortBy = DefaultSortBy
	}
	q.SortOrder = SortDesc
	if strings.TrimSpace(raw.SortOrder) == SortAsc {
		q.SortOrder = SortAsc
	}

	q.Badges = ParseBadgeList(raw.BadgeList)
	return q, nil
}

// ResolveCompanyID picks the tenant a caller may query. Only an ultra-admin
// may name another tenant; everyone else is pinned to their own.
func ResolveCompanyID(requested string, caller *models.Identity) string {
	if caller == nil {
		return ""
	}
	own := strings.TrimSpace(caller.CompanyID)
	if caller.IsUltraAdmin() {
		if requested = strings.TrimSpace(requested); requested != "" {
			return requested
		}
	}
	return own
}

// ParseDate reads a YYYY-MM-DD date in loc or an RFC 3339 timestamp.
func ParseDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.ParseInLocation(dateLayout, value, loc); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// EndOfDay returns the last millisecond of t's calendar day in loc.
func EndOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), loc)
}

// ParseBadgeList splits a comma-separated tag list, dropping blanks.
func ParseBadgeList(value string) []string {
	badges := []string{}
	for _, part := range strings.Split(value, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			badges = append(badges, tag)
		}
	}
	return badges
}

// Filter builds the conjunctive MongoDB filter for q.
func (q Query) Filter() bson.M {
	filter := bson.M{
		"companyId":  q.CompanyID,
		"campaignId": q.CampaignID,
		"createdTime": bson.M{
			"$gte": q.StartDate,
			"$lte": q.EndDate,
		},
	}

	if len(q.Badges) > 0 {
		filter["badges"] = bson.M{"$all": q.Badges}
	} else {
		filter["badges"] = bson.M{"$exists": true}
	}

	if q.Text != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Text), Options: "i"}
		or := make(bson.A, 0, len(searchFields))
		for _, field := range searchFields {
			or = append(or, bson.M{field: pattern})
		}
		filter["$or"] = or
	}

	return filter
}

// Sort orders by the resolved field, then _id so pages are stable.
func (q Query) Sort() bson.D {
	direction := -1
	if q.SortOrder == SortAsc {
		direction = 1
	}
	return bson.D{{Key: q.SortBy, Value: direction}, {Key: "_id", Value: direction}}
}

// Skip is the number of records before the requested page.
func (q Query) Skip() int64 {
	return (q.Page - 1) * q.Count
}

// FindOptions returns the sort and window for fetching one page.
func (q Query) FindOptions() *options.FindOptions {
	return options.Find().
		SetSort(q.Sort()).
		SetSkip(q.Skip()).
		SetLimit(q.Count)
}

// Result wraps a fetched page with its pagination metadata.
func (q Query) Result(leads []*models.Lead, totalCount int64) *models.LeadPage {
	if leads == nil {
		leads = []*models.Lead{}
	}
	return &models.LeadPage{
		Leads:      leads,
		PageCount:  PageCount(totalCount, q.Count),
		TotalCount: totalCount,
		Page:       q.Page,
		StartDate:  q.StartDate,
		EndDate:    q.EndDate,
		Count:      q.Count,
		SortBy:     q.SortBy,
		SortOrder:  q.SortOrder,
	}
}

// PageCount is ceil(total/count), never less than one.
func PageCount(total, count int64) int64 {
	if count <= 0 {
		count = DefaultCount
	}
	pages := (total + count - 1) / count
	if pages < 1 {
		return 1
	}
	return pages
}

// parseLeadingInt reads an optional sign and leading digits, ignoring any
// trailing garbage. Empty, unparseable and zero values yield def.
func parseLeadingInt(value string, def int64) int64 {
	value = strings.TrimSpace(value)
	neg := false
	if value != "" && (value[0] == '-' || value[0] == '+') {
		neg = value[0] == '-'
		value = value[1:]
	}

	var n int64
	digits := 0
	for _, r := range value {
		if r < '0' || r > '9' {
			break
		}
		if n > 1<<40 {
			break
		}
		n = n*10 + int64(r-'0')
		digits++
	}
	if digits == 0 || n == 0 {
		return def
	}
	if neg {
		return -n
	}
	return n
}

// clamp bounds n to [lo, hi]; a negative hi means no upper bound.
func clamp(n, lo, hi int64) int64 {
	if n < lo {
		return lo
	}
	if hi >= 0 && n > hi {
		return hi
	}
	return n
}
