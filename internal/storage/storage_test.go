package storage_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"mockedapi/internal/storage"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type store interface {
	Get(ctx context.Context, username string) (storage.Account, error)
	Set(ctx context.Context, username string, account storage.Account) error
	Create(ctx context.Context, username string, account storage.Account) error
	Merge(ctx context.Context, accounts storage.Accounts) ([]string, error)
	Delete(ctx context.Context, username string) error
	List(ctx context.Context) (storage.Accounts, error)
}

func behavesLikeAStore(newStore func() store) {
	var (
		s       store
		ctx     context.Context
		account storage.Account
	)

	BeforeEach(func() {
		s = newStore()
		ctx = context.Background()
		account = storage.Account{
			Name:            ptr("Test Name"),
			Password:        ptr("testpassword"),
			FavouriteFruit:  ptr("apple"),
			FavouriteMovie:  ptr("Star Wars"),
			FavouriteNumber: json.Number("42"),
		}
	})

	When("the username is absent", func() {
		It("Get should return ErrNotFound", func() {
			_, err := s.Get(ctx, "testuser")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})

		It("Delete should return ErrNotFound", func() {
			err := s.Delete(ctx, "testuser")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})

		It("List should be empty", func() {
			accounts, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(BeEmpty())
		})

		It("Create should store the account", func() {
			Expect(s.Create(ctx, "testuser", account)).To(Succeed())

			got, err := s.Get(ctx, "testuser")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(account))
		})

		It("Merge should add it and report it", func() {
			added, err := s.Merge(ctx, storage.Accounts{"testuser": account, "otheruser": {}})
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(Equal([]string{"otheruser", "testuser"}))

			accounts, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(HaveLen(2))
		})
	})

	When("an account is set", func() {
		BeforeEach(func() {
			Expect(s.Set(ctx, "testuser", account)).To(Succeed())
		})

		It("Get should return it", func() {
			got, err := s.Get(ctx, "testuser")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(account))
		})

		It("List should contain exactly that account", func() {
			accounts, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(HaveLen(1))
			Expect(accounts).To(HaveKeyWithValue("testuser", account))
		})

		It("Set should replace the record", func() {
			account.FavouriteFruit = ptr("orange")
			Expect(s.Set(ctx, "testuser", account)).To(Succeed())

			got, err := s.Get(ctx, "testuser")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.FavouriteFruit).To(HaveValue(Equal("orange")))
		})

		It("Create should return ErrExists and keep the record", func() {
			err := s.Create(ctx, "testuser", storage.Account{Name: ptr("Intruder")})
			Expect(err).To(MatchError(storage.ErrExists))

			got, err := s.Get(ctx, "testuser")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(account))
		})

		It("Merge should skip it", func() {
			added, err := s.Merge(ctx, storage.Accounts{
				"testuser":  {Name: ptr("Intruder")},
				"otheruser": {Name: ptr("Other")},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(Equal([]string{"otheruser"}))

			got, err := s.Get(ctx, "testuser")
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(account))
		})

		It("Delete should remove it", func() {
			Expect(s.Delete(ctx, "testuser")).To(Succeed())

			_, err := s.Get(ctx, "testuser")
			Expect(err).To(MatchError(storage.ErrNotFound))
		})

		It("List should return a copy", func() {
			accounts, err := s.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			delete(accounts, "testuser")

			_, err = s.Get(ctx, "testuser")
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the context is cancelled", func() {
		It("should return the context error", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()

			Expect(s.Set(cancelled, "testuser", account)).To(MatchError(context.Canceled))
			_, err := s.Get(cancelled, "testuser")
			Expect(err).To(MatchError(context.Canceled))
		})
	})
}

var _ = Describe("MemoryStore", func() {
	behavesLikeAStore(func() store {
		return storage.NewMemoryStore()
	})
})

var _ = Describe("FileStore", func() {
	var path string

	BeforeEach(func() {
		path = filepath.Join(GinkgoT().TempDir(), "storage", "account.json")
	})

	behavesLikeAStore(func() store {
		fs, err := storage.NewFileStore(path)
		Expect(err).NotTo(HaveOccurred())
		return fs
	})

	readFile := func() map[string]map[string]any {
		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		var doc map[string]map[string]any
		Expect(json.Unmarshal(data, &doc)).To(Succeed())
		return doc
	}

	Describe("NewFileStore", func() {
		It("should create an empty document when the file is missing", func() {
			fs, err := storage.NewFileStore(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(fs.Path()).To(Equal(path))
			Expect(readFile()).To(BeEmpty())
		})

		It("should keep an existing document", func() {
			Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
			Expect(os.WriteFile(path, []byte(`{"someuser":{"name":"SomeName"}}`), 0o644)).To(Succeed())

			fs, err := storage.NewFileStore(path)
			Expect(err).NotTo(HaveOccurred())

			acc, err := fs.Get(context.Background(), "someuser")
			Expect(err).NotTo(HaveOccurred())
			Expect(acc.Name).To(HaveValue(Equal("SomeName")))
		})

		It("should reject an empty path", func() {
			_, err := storage.NewFileStore("")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("persisted layout", func() {
		var fs *storage.FileStore

		BeforeEach(func() {
			var err error
			fs, err = storage.NewFileStore(path)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should key records by username without storing the username", func() {
			err := fs.Set(context.Background(), "testuser", storage.Account{
				Name:            ptr("Test Name"),
				Password:        ptr("testpassword"),
				FavouriteNumber: json.Number("42"),
			})
			Expect(err).NotTo(HaveOccurred())

			doc := readFile()
			Expect(doc).To(HaveKey("testuser"))
			Expect(doc["testuser"]).To(Equal(map[string]any{
				"name":            "Test Name",
				"password":        "testpassword",
				"favouriteNumber": float64(42),
			}))
		})

		It("should keep fields set to an empty string", func() {
			err := fs.Set(context.Background(), "testuser", storage.Account{
				Name:            ptr(""),
				Password:        ptr("testpassword"),
				FavouriteFruit:  ptr(""),
				FavouriteMovie:  ptr(""),
				FavouriteNumber: json.Number("0"),
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(readFile()["testuser"]).To(Equal(map[string]any{
				"name":            "",
				"password":        "testpassword",
				"favouriteFruit":  "",
				"favouriteMovie":  "",
				"favouriteNumber": float64(0),
			}))
		})

		It("should not rewrite the file when a merge adds nothing", func() {
			Expect(fs.Set(context.Background(), "testuser", storage.Account{Name: ptr("Test Name")})).To(Succeed())
			Expect(os.WriteFile(path, []byte(`{"testuser":{"name":"Test Name"}}`), 0o644)).To(Succeed())

			added, err := fs.Merge(context.Background(), storage.Accounts{"testuser": {Name: ptr("Other")}})
			Expect(err).NotTo(HaveOccurred())
			Expect(added).To(BeEmpty())

			data, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(Equal(`{"testuser":{"name":"Test Name"}}`))
		})

		It("should read changes made to the file by someone else", func() {
			Expect(os.WriteFile(path, []byte(`{"other":{"name":"Other"}}`), 0o644)).To(Succeed())

			accounts, err := fs.List(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(HaveKey("other"))
		})

		It("should treat a blank file as empty", func() {
			Expect(os.WriteFile(path, []byte("  \n"), 0o644)).To(Succeed())

			accounts, err := fs.List(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(accounts).To(BeEmpty())
		})

		It("should fail on a corrupt file", func() {
			Expect(os.WriteFile(path, []byte(`{not json`), 0o644)).To(Succeed())

			_, err := fs.Get(context.Background(), "testuser")
			Expect(err).To(MatchError(ContainSubstring("decode storage file")))
		})
	})
})

var _ = Describe("LoadSeed", func() {
	var (
		dir  string
		path string
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		path = filepath.Join(dir, "seed.yaml")
	})

	It("should load YAML fixtures", func() {
		content := `
someuser:
  name: SomeName
  password: somepassword
  favouriteFruit: some fruit
  favouriteMovie: The Room
  favouriteNumber: 1234
`
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

		accounts, err := storage.LoadSeed(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(accounts).To(HaveKeyWithValue("someuser", storage.Account{
			Name:            ptr("SomeName"),
			Password:        ptr("somepassword"),
			FavouriteFruit:  ptr("some fruit"),
			FavouriteMovie:  ptr("The Room"),
			FavouriteNumber: json.Number("1234"),
		}))
	})

	It("should load JSON fixtures", func() {
		path = filepath.Join(dir, "seed.json")
		Expect(os.WriteFile(path, []byte(`{"someuser":{"name":"SomeName","favouriteNumber":7}}`), 0o644)).To(Succeed())

		accounts, err := storage.LoadSeed(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(accounts["someuser"].FavouriteNumber).To(Equal(json.Number("7")))
	})

	It("should reject a non numeric favouriteNumber", func() {
		Expect(os.WriteFile(path, []byte("someuser:\n  favouriteNumber: lots\n"), 0o644)).To(Succeed())

		_, err := storage.LoadSeed(path)
		Expect(err).To(MatchError(ContainSubstring("is not a number")))
	})

	DescribeTable("should reject numbers the storage file cannot hold",
		func(value string) {
			content := "someuser:\n  favouriteNumber: " + value + "\n"
			Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())

			_, err := storage.LoadSeed(path)
			Expect(err).To(MatchError(ContainSubstring("is not a number")))
			Expect(err).To(MatchError(ContainSubstring(path)))
		},
		Entry("leading dot", ".5"),
		Entry("leading plus", "+5"),
		Entry("infinity", ".inf"),
		Entry("infinity word", "Infinity"),
		Entry("not a number", "NaN"),
	)

	It("should keep an explicit empty string", func() {
		Expect(os.WriteFile(path, []byte("someuser:\n  name: \"\"\n"), 0o644)).To(Succeed())

		accounts, err := storage.LoadSeed(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(accounts["someuser"].Name).To(HaveValue(BeEmpty()))
		Expect(accounts["someuser"].Password).To(BeNil())
	})

	It("should fail when the file is missing", func() {
		_, err := storage.LoadSeed(filepath.Join(dir, "missing.yaml"))
		Expect(err).To(MatchError(ContainSubstring("read seed file")))
	})
})
