package profile

import (
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/asciifx/internal/config"
)

var _ = Describe("Store", func() {
	var (
		dir string
		st  *Store
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		st = New(filepath.Join(dir, "ascii-fx"))
	})

	Describe("CreateDefault", func() {
		It("writes the default document once", func() {
			created, err := st.CreateDefault()
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeTrue())

			cfg, err := st.Load(DefaultName)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Style).To(Equal("blocky"))
			Expect(cfg.Width).To(Equal(38))
			Expect(cfg.Theme).To(Equal("dark"))
			Expect(cfg.Wave).To(BeFalse())
			Expect(cfg.Char).To(BeEmpty())
		})

		It("leaves an existing default untouched", func() {
			custom := config.DefaultConfig()
			custom.Style = "retro"
			Expect(st.Save(DefaultName, custom)).To(Succeed())

			created, err := st.CreateDefault()
			Expect(err).NotTo(HaveOccurred())
			Expect(created).To(BeFalse())

			cfg, err := st.Load(DefaultName)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Style).To(Equal("retro"))
		})
	})

	Describe("Save and Load", func() {
		It("round-trips every field", func() {
			in := &config.Config{
				Style: "smooth",
				Image: "/tmp/logo.png",
				Width: 64,
				Theme: "light",
				Wave:  true,
				Char:  "#",
			}
			Expect(st.Save("work", in)).To(Succeed())

			out, err := st.Load("work")
			Expect(err).NotTo(HaveOccurred())
			Expect(*out).To(Equal(*in))
		})

		It("fills absent fields with defaults", func() {
			Expect(st.Init()).To(Succeed())
			Expect(os.WriteFile(st.Path("sparse"), []byte(`{"style":"dense"}`), 0644)).To(Succeed())

			cfg, err := st.Load("sparse")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Style).To(Equal("dense"))
			Expect(cfg.Width).To(Equal(config.DefaultWidth))
			Expect(cfg.Theme).To(Equal(config.DefaultTheme))
			Expect(cfg.BW).To(BeFalse())
		})

		It("reads the undocumented bw flag", func() {
			Expect(st.Init()).To(Succeed())
			Expect(os.WriteFile(st.Path("mono"), []byte(`{"bw":true,"width":20}`), 0644)).To(Succeed())

			cfg, err := st.Load("mono")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.BW).To(BeTrue())
			Expect(cfg.Width).To(Equal(20))
		})

		It("reports a missing profile as not found", func() {
			_, err := st.Load("ghost")
			Expect(errors.Is(err, ErrNotFound)).To(BeTrue())
			Expect(err.Error()).To(Equal("Profile 'ghost' not found"))
		})

		It("rejects names that escape the directory", func() {
			Expect(st.Save("../evil", config.DefaultConfig())).To(MatchError(ErrInvalidName))
			_, err := st.Load("")
			Expect(err).To(MatchError(ErrInvalidName))
			Expect(ValidName("..")).To(MatchError(ErrInvalidName))
			Expect(ValidName(".")).To(MatchError(ErrInvalidName))
			Expect(ValidName("work")).To(Succeed())
		})
	})

	Describe("List and Delete", func() {
		It("lists sorted json stems only", func() {
			names, err := st.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(BeEmpty())

			Expect(st.Save("zeta", config.DefaultConfig())).To(Succeed())
			Expect(st.Save("alpha", config.DefaultConfig())).To(Succeed())
			Expect(st.SaveLast("alpha")).To(Succeed())
			Expect(os.WriteFile(filepath.Join(st.Dir(), "notes.txt"), []byte("x"), 0644)).To(Succeed())

			names, err = st.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(names).To(Equal([]string{"alpha", "zeta"}))
		})

		It("deletes an existing profile", func() {
			Expect(st.Save("old", config.DefaultConfig())).To(Succeed())
			Expect(st.Delete("old")).To(Succeed())
			Expect(st.Exists("old")).To(BeFalse())
		})

		It("reports not found when deleting a missing profile", func() {
			err := st.Delete("nope")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrNotFound)).To(BeTrue())
		})
	})

	Describe("Export and Import", func() {
		BeforeEach(func() {
			cfg := config.DefaultConfig()
			cfg.Style = "ultra"
			cfg.Width = 50
			Expect(st.Save("share", cfg)).To(Succeed())
		})

		It("copies the json document verbatim", func() {
			dest := filepath.Join(dir, "out", "share.json")
			Expect(st.Export("share", dest)).To(Succeed())

			want, _ := os.ReadFile(st.Path("share"))
			got, err := os.ReadFile(dest)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(want))
		})

		It("exports yaml and imports it back", func() {
			dest := filepath.Join(dir, "copy.yaml")
			Expect(st.Export("share", dest)).To(Succeed())

			data, err := os.ReadFile(dest)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("style: ultra"))

			name, err := st.Import(dest)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("copy"))

			cfg, err := st.Load("copy")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Style).To(Equal("ultra"))
			Expect(cfg.Width).To(Equal(50))
		})

		It("imports json named after the file stem", func() {
			src := filepath.Join(dir, "laptop.json")
			Expect(os.WriteFile(src, []byte(`{"style":"bars","width":12}`), 0644)).To(Succeed())

			name, err := st.Import(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("laptop"))

			cfg, err := st.Load("laptop")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Style).To(Equal("bars"))
		})

		It("fails on export of a missing profile", func() {
			err := st.Export("ghost", filepath.Join(dir, "ghost.json"))
			Expect(errors.Is(err, ErrNotFound)).To(BeTrue())
		})

		It("fails on import of a missing or malformed file", func() {
			_, err := st.Import(filepath.Join(dir, "missing.json"))
			Expect(err).To(HaveOccurred())

			bad := filepath.Join(dir, "bad.json")
			Expect(os.WriteFile(bad, []byte("{not json"), 0644)).To(Succeed())
			_, err = st.Import(bad)
			Expect(err).To(HaveOccurred())
			Expect(st.Exists("bad")).To(BeFalse())

			notJSON := filepath.Join(dir, "notes.txt")
			Expect(os.WriteFile(notJSON, []byte("style = retro"), 0644)).To(Succeed())
			_, err = st.Import(notJSON)
			Expect(err).To(HaveOccurred())
			Expect(st.Exists("notes")).To(BeFalse())
		})

		It("imports other extensions as json", func() {
			src := filepath.Join(dir, "desk.txt")
			Expect(os.WriteFile(src, []byte(`{"style":"dense","width":20}`), 0644)).To(Succeed())

			name, err := st.Import(src)
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("desk"))

			cfg, err := st.Load("desk")
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Style).To(Equal("dense"))
			Expect(cfg.Width).To(Equal(20))
		})
	})

	Describe("last used profile", func() {
		It("defaults to the default profile", func() {
			Expect(st.LoadLast()).To(Equal(DefaultName))
		})

		It("persists the last name", func() {
			Expect(st.SaveLast("work")).To(Succeed())
			Expect(st.LoadLast()).To(Equal("work"))
		})
	})
})
