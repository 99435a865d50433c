package log

import (
	"bytes"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/sirupsen/logrus"
)

func TestModuleField(t *testing.T) {
	g := NewWithT(t)
	var buf bytes.Buffer
	out := Base().Out
	level := Base().GetLevel()
	defer func() {
		Base().SetOutput(out)
		Base().SetLevel(level)
	}()
	Base().SetOutput(&buf)

	g.Expect(SetLevel("info")).To(Succeed())
	NewLogger("codec").WithField("syndrome", 13).Info("uncorrectable")
	g.Expect(buf.String()).To(ContainSubstring("name=codec"))
	g.Expect(buf.String()).To(ContainSubstring("syndrome=13"))
	g.Expect(Base().GetLevel()).To(Equal(logrus.InfoLevel))
}

func TestSetLevelRejectsGarbage(t *testing.T) {
	g := NewWithT(t)
	g.Expect(SetLevel("loud")).NotTo(Succeed())
}
