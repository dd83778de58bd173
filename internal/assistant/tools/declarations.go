package tools

import (
	"github.com/cloudwego/eino/schema"

	"github.com/s2o-platform/dine-assist/internal/assistant/model"
)

// Tool names understood by the dispatcher. ToolGetMenu is the reduced-schema
// alias some deployments declare instead of ToolGetMenuFiltered.
const (
	ToolGetMenuFiltered  = "get_menu_filtered"
	ToolGetMenu          = "get_menu"
	ToolCheckOrderStatus = "check_order_status"
	ToolPlaceOrderIntent = "place_order_intent"
)

// DefaultToolNames is the full declaration set bound to a backend session.
var DefaultToolNames = []string{ToolGetMenuFiltered, ToolCheckOrderStatus, ToolPlaceOrderIntent}

var filterTypeEnum = []string{
	string(model.FilterAll),
	string(model.FilterAvailable),
	string(model.FilterComingSoon),
	string(model.FilterOutOfStock),
	string(model.FilterBestSeller),
	string(model.FilterPromo),
	string(model.FilterDrink),
	string(model.FilterFood),
}

func menuFilteredInfo(name string) *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: name,
		Desc: "Lấy danh sách món ăn theo trạng thái hoặc loại cụ thể (all, available, coming_soon, out_of_stock, best_seller, promo, drink, food).",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"filter_type": {
				Type:     "string",
				Enum:     filterTypeEnum,
				Desc:     "Loại bộ lọc cần dùng dựa trên câu hỏi của khách. 'available' gồm các món đang bán được (Available + BestSeller + Promo).",
				Required: true,
			},
		}),
	}
}

func checkOrderStatusInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolCheckOrderStatus,
		Desc: "Kiểm tra trạng thái đơn hàng theo mã đơn.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"order_id": {
				Type:     "integer",
				Desc:     "Mã đơn hàng cần kiểm tra.",
				Required: true,
			},
		}),
	}
}

func placeOrderIntentInfo() *schema.ToolInfo {
	return &schema.ToolInfo{
		Name: ToolPlaceOrderIntent,
		Desc: "Tìm thông tin món ăn để xác nhận đơn đặt hàng. Không tạo đơn thật.",
		ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
			"item_name": {
				Type:     "string",
				Desc:     "Tên món khách muốn đặt.",
				Required: true,
			},
		}),
	}
}

// Declarations returns the ToolInfo set for the given tool names, or the
// default set when none are given. Unknown names are skipped so a deployment
// config cannot break session creation.
func Declarations(names ...string) []*schema.ToolInfo {
	if len(names) == 0 {
		names = DefaultToolNames
	}
	infos := make([]*schema.ToolInfo, 0, len(names))
	for _, name := range names {
		switch name {
		case ToolGetMenuFiltered, ToolGetMenu:
			infos = append(infos, menuFilteredInfo(name))
		case ToolCheckOrderStatus:
			infos = append(infos, checkOrderStatusInfo())
		case ToolPlaceOrderIntent:
			infos = append(infos, placeOrderIntentInfo())
		}
	}
	return infos
}
