package snowflake

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/ekit/syncx"
)

// Generator 按照业务类型生成 ID，同一个节点上不同业务的 ID 不会重复
type Generator interface {
	Generate(kind Kind) (ID, error)
}

// Kind 业务类型，占用 snowflake node 的高五位
type Kind uint

const (
	KindProject Kind = iota
	KindTask
	KindDiscussion
	KindReply
	KindMessage

	// KindCount 现有业务类型的数量
	KindCount
)

type CustomSnowFlake struct {
	// 键为业务类型
	nodes syncx.Map[Kind, *snowflake.Node]
}

const (
	maxNode uint = 31
	maxKind uint = 31
)

var (
	ErrExceedNode  = errors.New("node超出限制")
	ErrExceedKind  = errors.New("业务类型超出限制")
	ErrUnknownKind = errors.New("未知的业务类型")
)

// NewCustomSnowFlake nodeId 是部署节点编号，kinds 是要支持的业务类型数量
// node 的十位里面，高五位是业务类型，低五位是节点编号
func NewCustomSnowFlake(nodeId uint, kinds uint) (*CustomSnowFlake, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w", ErrExceedNode)
	}
	if kinds > maxKind+1 {
		return nil, fmt.Errorf("%w", ErrExceedKind)
	}
	res := &CustomSnowFlake{}
	for i := 0; i < int(kinds); i++ {
		nid := (i << 5) | int(nodeId)
		n, err := snowflake.NewNode(int64(nid))
		if err != nil {
			return nil, err
		}
		res.nodes.Store(Kind(i), n)
	}
	return res, nil
}

type ID int64

func (c *CustomSnowFlake) Generate(kind Kind) (ID, error) {
	n, ok := c.nodes.Load(kind)
	if !ok {
		return 0, fmt.Errorf("%w", ErrUnknownKind)
	}
	return ID(n.Generate()), nil
}

func (f ID) Kind() Kind {
	node := snowflake.ID(f).Node()
	return Kind(node >> 5)
}

func (f ID) Int64() int64 {
	return int64(f)
}
