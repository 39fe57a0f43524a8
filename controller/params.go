package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/forum_service/myErrors"
)

// pathID 读取路径参数中的正整数 id
func pathID(c *gin.Context, name string) (uint64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, myErrors.NewBadRequest("请求参数格式错误", name+": 必须是正整数")
	}
	return id, nil
}
