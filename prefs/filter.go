package prefs

import (
	"fmt"

	"github.com/rushteam/recommends/pkg/dsl"
)

// FilterRecords 按 CEL 表达式筛选相似度记录，保持输入顺序。
//
// 表达式中可用的字段：
//   - record.score         相似度
//   - record.tenant        租户 ID
//   - record.object        主对象标识符
//   - record.related       相关对象标识符
//   - record.object_type   主对象类型段，如 "blog.post"
//   - record.related_type  相关对象类型段
//
// 例如：record.score >= 0.5 && record.object_type == record.related_type
func FilterRecords(records []SimilarityRecord, expr string, provider IdentifierProvider) ([]SimilarityRecord, error) {
	eval, err := dsl.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("filter %q: %w", expr, err)
	}

	out := make([]SimilarityRecord, 0, len(records))
	for i, rec := range records {
		vars, err := recordVars(rec, provider)
		if err != nil {
			return nil, fmt.Errorf("filter record %d: %w", i, err)
		}
		ok, err := eval.Evaluate(vars)
		if err != nil {
			return nil, fmt.Errorf("filter record %d: %w", i, err)
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out, nil
}

func recordVars(rec SimilarityRecord, provider IdentifierProvider) (map[string]any, error) {
	item, related, err := recordIdentifiers(rec, provider)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"score":        rec.Score,
		"tenant":       rec.Tenant.ID,
		"object":       item,
		"related":      related,
		"object_type":  rec.Object.TypeMeta().String(),
		"related_type": rec.Related.TypeMeta().String(),
	}, nil
}
