package fallback

import (
	"context"
	"strconv"
	"strings"

	"github.com/s2o-platform/dine-assist/internal/assistant/catalog"
	"github.com/s2o-platform/dine-assist/internal/assistant/model"
	"github.com/s2o-platform/dine-assist/internal/assistant/prompts"
	logx "github.com/s2o-platform/dine-assist/pkg/logger"
)

// MenuFetcher reads a tenant's menu.
type MenuFetcher interface {
	Fetch(ctx context.Context, tenantID int) ([]model.MenuItem, error)
}

// Rule is one entry of the priority cascade: a predicate over the
// lower-cased message and the handler that synthesizes the reply. Rules are
// evaluated in order and the first match short-circuits the rest — the
// ordering is observable behavior and reordering is a breaking change.
type Rule struct {
	Name    string
	Match   func(msg string) bool
	Respond func(ctx context.Context, msg string, tenantID int, reqCtx model.Context) string
}

// DefaultReply is the terminal branch: a fixed menu of supported intents.
const DefaultReply = "👨‍🍳 Bạn cần giúp gì ạ? (Menu, Sắp ra mắt, Hết hàng, Gọi món, Địa chỉ...)"

// ConfirmReply acknowledges a confirmation without creating any order.
const ConfirmReply = "✅ Dạ mình đã ghi nhận yêu cầu! Nhân viên quán sẽ xác nhận đơn với bạn ngay ạ."

// Keyword sets for the intent branches. Vietnamese first, English synonyms
// after, matched as substrings of the lower-cased message.
var (
	addressKeywords    = []string{"địa chỉ", "ở đâu", "address", "where"}
	nameKeywords       = []string{"tên quán", "nhà hàng nào", "tên nhà hàng", "restaurant name"}
	comingSoonKeywords = []string{"sắp có", "sắp ra", "coming soon"}
	outOfStockKeywords = []string{"hết hàng", "hết món", "out of stock"}
	availableKeywords  = []string{"đang bán", "còn món gì", "menu hiện tại", "đang phục vụ"}
	bestSellerKeywords = []string{"best", "bán chạy", "hot"}
	promoKeywords      = []string{"khuyến mãi", "giảm giá", "promo", "discount"}
	menuKeywords       = []string{"menu", "thực đơn"}
	orderKeywords      = []string{"đặt", "order", "lấy", "get", "take", "mua"}
	// Unambiguous order verbs only. "lấy"/"get"/"take" also appear in
	// plain questions, so they must not suppress the drink branch.
	orderVerbKeywords = []string{"đặt", "order", "mua"}
	confirmKeywords    = []string{"xác nhận", "đồng ý", "chốt", "yes", "confirm", "ok"}
)

// Responder is the deterministic, model-free reply path. It re-fetches menu
// data directly and always produces non-empty text.
type Responder struct {
	menu    MenuFetcher
	filters *catalog.FilterEngine
	rules   []Rule
}

func NewResponder(menu MenuFetcher, filters *catalog.FilterEngine) *Responder {
	r := &Responder{menu: menu, filters: filters}
	r.rules = r.defaultRules()
	return r
}

// Rules exposes the active cascade for inspection.
func (r *Responder) Rules() []Rule {
	return r.rules
}

// Respond synthesizes a reply for the message without any model backend.
func (r *Responder) Respond(ctx context.Context, message string, tenantID int, reqCtx model.Context) string {
	msg := strings.ToLower(message)
	for _, rule := range r.rules {
		if !rule.Match(msg) {
			continue
		}
		logx.Debug().Str("rule", rule.Name).Int("tenant_id", tenantID).Msg("fallback rule matched")
		return rule.Respond(ctx, msg, tenantID, reqCtx)
	}
	return DefaultReply
}

func (r *Responder) defaultRules() []Rule {
	return []Rule{
		{
			Name:  "address",
			Match: containsAny(addressKeywords),
			Respond: func(_ context.Context, _ string, _ int, reqCtx model.Context) string {
				addr := strings.TrimSpace(reqCtx.Address)
				if addr == "" {
					addr = prompts.DefaultAddress
				}
				return "📍 Địa chỉ quán mình là: " + addr + " ạ."
			},
		},
		{
			Name:  "restaurant_name",
			Match: containsAny(nameKeywords),
			Respond: func(_ context.Context, _ string, _ int, reqCtx model.Context) string {
				name := strings.TrimSpace(reqCtx.RestaurantName)
				if name == "" {
					name = prompts.DefaultRestaurantName
				}
				return "🏠 Dạ đây là nhà hàng " + name + " ạ."
			},
		},
		{
			Name:  "coming_soon",
			Match: containsAny(comingSoonKeywords),
			Respond: func(ctx context.Context, _ string, tenantID int, _ model.Context) string {
				items := r.fetchFiltered(ctx, tenantID, model.FilterComingSoon)
				if len(items) == 0 {
					return "👨‍🍳 Hiện chưa có thông tin món mới sắp ra mắt ạ."
				}
				return "🔜 Các món sắp ra mắt:\n" + listNames(items)
			},
		},
		{
			Name:  "out_of_stock",
			Match: containsAny(outOfStockKeywords),
			Respond: func(ctx context.Context, _ string, tenantID int, _ model.Context) string {
				items := r.fetchFiltered(ctx, tenantID, model.FilterOutOfStock)
				if len(items) == 0 {
					return "👨‍🍳 Tuyệt vời! Hiện tại quán đang đầy đủ nguyên liệu cho tất cả các món ạ."
				}
				return "🚫 Các món tạm hết hàng:\n" + listNames(items)
			},
		},
		{
			Name:  "available",
			Match: containsAny(availableKeywords),
			Respond: func(ctx context.Context, _ string, tenantID int, _ model.Context) string {
				items := r.fetchFiltered(ctx, tenantID, model.FilterAvailable)
				if len(items) == 0 {
					return "👨‍🍳 Hiện quán chưa cập nhật thực đơn ạ."
				}
				return "✅ Thực đơn đang phục vụ:\n" + listWithPrices(items)
			},
		},
		{
			// Drink questions, unless the message is an explicit order
			// attempt that should reach the ordering branch below.
			Name: "drink",
			Match: func(msg string) bool {
				if containsAny(orderVerbKeywords)(msg) {
					return false
				}
				return strings.Contains(msg, "uống") || containsAny(r.filters.DrinkKeywords())(msg)
			},
			Respond: func(ctx context.Context, _ string, tenantID int, _ model.Context) string {
				items := r.fetchFiltered(ctx, tenantID, model.FilterDrink)
				if len(items) == 0 {
					return "Chưa có đồ uống."
				}
				return "🍹 Menu đồ uống:\n" + listWithPrices(items)
			},
		},
		{
			Name:  "best_seller",
			Match: containsAny(bestSellerKeywords),
			Respond: func(ctx context.Context, _ string, tenantID int, _ model.Context) string {
				items := r.fetchFiltered(ctx, tenantID, model.FilterBestSeller)
				if len(items) == 0 {
					return "Chưa có món Best Seller."
				}
				return "🔥 Best Seller:\n" + listWithPrices(items)
			},
		},
		{
			Name:  "promo",
			Match: containsAny(promoKeywords),
			Respond: func(ctx context.Context, _ string, tenantID int, _ model.Context) string {
				items := r.fetchFiltered(ctx, tenantID, model.FilterPromo)
				if len(items) == 0 {
					return "Chưa có khuyến mãi."
				}
				return "🎉 Khuyến mãi:\n" + listWithPrices(items)
			},
		},
		{
			Name:  "menu",
			Match: containsAny(menuKeywords),
			Respond: func(ctx context.Context, _ string, tenantID int, _ model.Context) string {
				items := r.fetchFiltered(ctx, tenantID, model.FilterAll)
				if len(items) == 0 {
					return "📜 Hiện quán chưa có món nào ạ."
				}
				return "📜 Tất cả món ăn:\n" + listWithStatus(items)
			},
		},
		{
			Name:  "order_intent",
			Match: containsAny(orderKeywords),
			Respond: func(ctx context.Context, msg string, tenantID int, _ model.Context) string {
				items := r.fetchFiltered(ctx, tenantID, model.FilterAll)
				for _, item := range items {
					if strings.Contains(msg, strings.ToLower(item.Name)) {
						return "🛒 Bạn muốn đặt " + item.Name + " (" + formatPrice(item.Price) + "đ) phải không ạ? Nhắn 'xác nhận' để mình lên đơn nha."
					}
				}
				return "👨‍🍳 Bạn muốn đặt món gì ạ? Vui lòng cho mình tên món cụ thể nha."
			},
		},
		{
			Name:  "confirm",
			Match: containsAny(confirmKeywords),
			Respond: func(_ context.Context, _ string, _ int, _ model.Context) string {
				return ConfirmReply
			},
		},
	}
}

// fetchFiltered re-reads the catalog and applies the filter, degrading any
// upstream failure to an empty list.
func (r *Responder) fetchFiltered(ctx context.Context, tenantID int, ft model.FilterType) []model.MenuItem {
	items, err := r.menu.Fetch(ctx, tenantID)
	if err != nil {
		return nil
	}
	return r.filters.Filter(items, ft)
}

func containsAny(keywords []string) func(string) bool {
	return func(msg string) bool {
		for _, k := range keywords {
			if strings.Contains(msg, k) {
				return true
			}
		}
		return false
	}
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

func listNames(items []model.MenuItem) string {
	lines := make([]string, 0, len(items))
	for _, i := range items {
		lines = append(lines, "- "+i.Name)
	}
	return strings.Join(lines, "\n")
}

func listWithPrices(items []model.MenuItem) string {
	lines := make([]string, 0, len(items))
	for _, i := range items {
		lines = append(lines, "- "+i.Name+": "+formatPrice(i.Price)+"đ")
	}
	return strings.Join(lines, "\n")
}

func listWithStatus(items []model.MenuItem) string {
	lines := make([]string, 0, len(items))
	for _, i := range items {
		lines = append(lines, "- "+i.Name+" ("+string(i.Status)+"): "+formatPrice(i.Price)+"đ")
	}
	return strings.Join(lines, "\n")
}
