package api

import "github.com/gofiber/fiber/v2"

// User-facing messages stay in Chinese, matching the product's UI language.
const (
	msgCredentialsRequired = "用户名和密码不能为空"
	msgUsernameTaken       = "用户名已存在"
	msgRegisterFailed      = "注册失败"
	msgBadCredentials      = "用户名或密码错误"
	msgDueDateRequired     = "用户ID和预产期不能为空"
	msgNoDueDate           = "请先设置预产期"
	msgRecordRequired      = "用户ID和记录日期不能为空"
	msgCheckupRequired     = "用户ID和检查日期不能为空"
	msgPhotoRequired       = "用户ID、日期和照片不能为空"
	msgPhotoNotFound       = "照片不存在"
	msgFieldsRequired      = "必填字段不能为空"
	msgParamsIncomplete    = "参数不完整"
	msgSaveFailed          = "保存失败"
	msgDeleteFailed        = "删除失败"
	msgActionFailed        = "操作失败"
	msgQueryFailed         = "查询失败"
	msgSuggestionFailed    = "生成建议失败"
	msgAddFamilyFailed     = "添加家庭成员失败"
	msgTokenInvalid        = "会话令牌无效"
	msgTokenMismatch       = "会话令牌与用户不匹配"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func success(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"success": true})
}
