package word

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Source 词库。进程启动时从文件加载一次，之后只读。
// 空词库是合法状态，开局时会以 NoWords 拒绝。
type Source struct {
	words []string
}

// Load 从 YAML 文件加载词库（顶层为字符串数组，JSON 数组同样可解析）。
// 文件缺失或格式错误时返回空词库而不是失败。
func Load(path string) *Source {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("⚠️  读取词库文件失败: %v", err)
		return &Source{}
	}

	var words []string
	if err := yaml.Unmarshal(data, &words); err != nil {
		log.Printf("⚠️  词库文件 %s 必须是字符串数组: %v", path, err)
		return &Source{}
	}

	log.Printf("📚 已从 %s 加载 %d 个词语", path, len(words))
	return &Source{words: words}
}

// FromList 用给定词语构造词库（测试用）
func FromList(words []string) *Source {
	return &Source{words: words}
}

// Count 返回词语数量
func (s *Source) Count() int {
	return len(s.words)
}

// Pick 用给定的均匀随机函数选取一个词语
func (s *Source) Pick(intn func(n int) int) (string, error) {
	if len(s.words) == 0 {
		return "", fmt.Errorf("word source is empty")
	}
	return s.words[intn(len(s.words))], nil
}

// Words 返回词语列表的副本
func (s *Source) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}
