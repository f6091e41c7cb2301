package core

import (
	"context"
	"strings"
)

// TypeMeta 描述一个持久化对象的类型：命名空间 + 类型名。
// 标识符中的类型段即 TypeMeta.String()，如 "blog.post"。
type TypeMeta struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
}

// String 返回 "<namespace>.<lowercased-name>"。
func (m TypeMeta) String() string {
	return m.Namespace + "." + strings.ToLower(m.Name)
}

// Object 是可被投票/推荐引用的任意持久化对象。
//
// 实现方只需提供类型元信息和对象 ID；ID 以字符串表示，
// 数字 ID 请自行格式化（strconv.FormatInt）。
type Object interface {
	TypeMeta() TypeMeta
	ObjectID() string
}

// ObjectLoader 按 ID 加载某一类型的对象实例。
// 对象不存在时应返回 IsNotFound 为 true 的错误。
type ObjectLoader func(ctx context.Context, id string) (Object, error)

// TypeDescriptor 是类型注册表中的一项：类型元信息 + 加载函数。
type TypeDescriptor struct {
	Meta TypeMeta
	Load ObjectLoader
}
