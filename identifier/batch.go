package identifier

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rushteam/recommends/core"
)

// Resolved 是一个标识符的解码结果。
type Resolved struct {
	Identifier string
	Object     core.Object
	Tenant     *core.Tenant
}

// DecodeAll 并发解码一批标识符，结果与输入顺序一致。
// limit <= 0 表示不限制并发数。任一解码失败即取消其余请求并返回该错误。
func (c *Codec) DecodeAll(ctx context.Context, identifiers []string, limit int) ([]Resolved, error) {
	out := make([]Resolved, len(identifiers))
	if len(identifiers) == 0 {
		return out, nil
	}

	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i, id := range identifiers {
		i, id := i, id
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			obj, tenant, err := c.Decode(egCtx, id)
			if err != nil {
				return err
			}
			out[i] = Resolved{Identifier: id, Object: obj, Tenant: tenant}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
