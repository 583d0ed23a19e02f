package oracle

import (
	"encoding/json"
	"fmt"

	"github.com/minhqn/price-intel/model"
)

// The prompts are Vietnamese because the whole market surface is: listings,
// summaries and reports are all vi-VN.

func buildFlatSystemPrompt(query string) string {
	return fmt.Sprintf(`
Bạn là một trợ lý phân tích dữ liệu chính xác.
Nhiệm vụ của bạn là lọc danh sách sản phẩm dựa trên truy vấn tìm kiếm "%s".
Xác định danh sách các sản phẩm liên quan đến truy vấn và loại bỏ các sản phẩm không liên quan hay không chính xác với từ khóa tìm kiếm.
Sản phẩm hợp lệ phải đi riêng lẻ, không đi theo combo.
Nhận thức được các tên đồng nghĩa, ví dụ: (lô lô hay lollo, cherry hay sơ ri,...).
Nếu số lượng sản phẩm quá ít <= 2 thì có thể bỏ qua một số yếu tố xét hợp lệ như vùng hay khối lượng

Xuất kết quả dưới dạng JSON với cấu trúc sau:
{
  "valid_product_ids": [
    {
      "product_id": int,
      "product_name": string
    }
  ],
  "searchSummary": "string (Một tóm tắt ngắn gọn 1 câu về những gì tìm thấy, bằng tiếng Việt)"
}
`, query)
}

func buildGroupedSystemPrompt(query string) string {
	return fmt.Sprintf(`
Bạn là một trợ lý phân tích dữ liệu chính xác.
Nhiệm vụ của bạn là nhóm danh sách sản phẩm dựa trên truy vấn tìm kiếm "%s".
Loại bỏ các sản phẩm không liên quan đến truy vấn, sau đó gom các sản phẩm còn lại thành từng nhóm theo cùng một phân loại (kích cỡ, khối lượng, quy cách đóng gói...).
Sản phẩm hợp lệ phải đi riêng lẻ, không đi theo combo.
Nhận thức được các tên đồng nghĩa, ví dụ: (lô lô hay lollo, cherry hay sơ ri,...).

Xuất kết quả dưới dạng JSON với cấu trúc sau:
{
  "product_groups": [
    {
      "group_name": "string (tên phân loại)",
      "description": "string (mô tả ngắn về phân loại)",
      "product_ids": [int]
    }
  ],
  "searchSummary": "string (Một tóm tắt ngắn gọn 1 câu về những gì tìm thấy, bằng tiếng Việt)"
}
`, query)
}

func buildUserPrompt(query string, candidates []model.OracleCandidate) (string, error) {
	data, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Query: %q\n\nDATA cần xử lý:\n%s\n", query, data), nil
}
