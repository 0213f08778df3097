package output

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/mtrand/task"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo 把结果写入MongoDB集合，每个抽样任务一个文档
type Mongo struct {
	client *mongo.Client
	coll   *mongo.Collection
	run    string // 本次运行的标识，写入每个文档的run字段
}

// NewMongo 连接MongoDB
// 参数：uri-连接字符串，db-数据库名，col-集合名
// 返回：连接字符串非法或连接失败时返回错误
func NewMongo(ctx context.Context, uri, db, col string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("output: connect mongo: %w", err)
	}
	return &Mongo{
		client: client,
		coll:   client.Database(db).Collection(col),
	}, nil
}

// WithRun 设置写入文档的run字段
func (m *Mongo) WithRun(run string) *Mongo {
	m.run = run
	return m
}

func (m *Mongo) Write(ctx context.Context, results []task.Result) error {
	if len(results) == 0 {
		return nil
	}
	docs := Documents(m.run, results)
	res, err := m.coll.InsertMany(ctx, docs)
	if err != nil {
		return fmt.Errorf("output: insert into %s: %w", m.coll.Name(), err)
	}
	log.Infof("inserted %d documents into %s", len(res.InsertedIDs), m.coll.Name())
	return nil
}

func (m *Mongo) Close() error {
	return m.client.Disconnect(context.Background())
}

// Documents 把结果转换为待插入的BSON文档
// 说明：run为空时不写run字段
func Documents(run string, results []task.Result) []any {
	return lo.Map(results, func(r task.Result, _ int) any {
		doc := bson.D{
			{Key: "name", Value: r.Name},
			{Key: "kind", Value: string(r.Kind)},
			{Key: "values", Value: r.Values},
		}
		if r.Summary != nil {
			doc = append(doc, bson.E{Key: "summary", Value: r.Summary})
		}
		if run != "" {
			doc = append(doc, bson.E{Key: "run", Value: run})
		}
		return doc
	})
}
