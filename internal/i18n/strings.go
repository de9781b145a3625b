package i18n

// Flat dotted-key string tables. Keys mirror the page sections they belong
// to; both languages carry the same key set.
var translations = map[Language]map[string]string{
	English: {
		"site.name":     "Pedro Felipe",
		"site.subtitle": "Backend Engineer & System Architect",

		"nav.home":     "Home",
		"nav.about":    "About / CV",
		"nav.projects": "Projects",
		"nav.blog":     "Blog",
		"nav.links":    "Links",
		"nav.language": "Language",

		"footer.madeWith":   "Made with",
		"footer.by":         "by",
		"footer.navigation": "Navigation",
		"footer.connect":    "Connect",
		"footer.builtWith":  "Built with Go, Gin & goldmark",

		"hero.greeting":     "Hi, I'm Pedro Felipe",
		"hero.title":        "Backend Engineer & DevOps Enthusiast",
		"hero.description":  "Building scalable, maintainable systems focused on efficiency and reliability",
		"hero.cta":          "Explore my work",
		"hero.ctaSecondary": "Read my CV",

		"about.title":       "About Me",
		"about.intro":       "I am a backend engineer passionate about designing robust and scalable systems.",
		"about.work":        "Work Experience",
		"about.education":   "Education",
		"about.contact":     "Let's Connect",
		"about.contactDesc": "Feel free to reach out through any of these channels. I'm always open to discussing new projects, technical challenges, or collaboration opportunities.",
		"about.present":     "Present",

		"projects.title":     "Featured Projects",
		"projects.subtitle":  "Check out my latest work",
		"projects.code":      "Code",
		"projects.demo":      "Demo",
		"projects.filter":    "Filter by technology",
		"projects.clear":     "Clear all",
		"projects.noResults": "No projects found with those technologies.",

		"project.oportunne":     "Web platform connecting students, professors, and companies to centralize opportunities for early career professionals.",
		"project.saudePontual":  "Medical appointment scheduling system with robust backend architecture, JWT authentication, and Docker containerization.",
		"project.apiFinanceiro": "Financial transactions management API built with TypeScript and Fastify, backed by SQLite and Knex.",
		"project.notesApi":      "Simple REST API for note management with CRUD operations, Zod validation, and Prisma ORM.",
		"project.planIt":        "Academic project built using Scrum methodology: an intuitive calendar application for event management.",

		"blog.title":       "Blog",
		"blog.subtitle":    "Insights on backend engineering, system design, and DevOps",
		"blog.readMore":    "Read more",
		"blog.back":        "Back",
		"blog.share":       "Share",
		"blog.copyLink":    "Copy link",
		"blog.linkCopied":  "Link copied!",
		"blog.noPosts":     "No posts yet",
		"blog.noPostsDesc": "Check back soon for new content.",
		"blog.page":        "Page",
		"blog.of":          "of",
		"blog.previous":    "Previous",
		"blog.next":        "Next",
		"blog.allTags":     "All tags",
		"blog.onThisPage":  "On This Page",
		"blog.readingTime": "min read",

		"links.title":       "Links",
		"links.description": "Find me around the web",

		"contact.title":   "Contact Me",
		"contact.name":    "Full name",
		"contact.email":   "Email",
		"contact.message": "Message",
		"contact.send":    "Send",
		"contact.success": "Thank you for your message! I'll get back to you soon.",
		"contact.error":   "Sorry, there was an error sending your message. Please try again later.",

		"notFound.title":       "Page Not Found",
		"notFound.description": "The page you're looking for doesn't exist or has been moved.",
		"notFound.cta":         "Back to Home",
	},

	Portuguese: {
		"site.name":     "Pedro Felipe",
		"site.subtitle": "Engenheiro Backend & Arquiteto de Sistemas",

		"nav.home":     "Início",
		"nav.about":    "Sobre / CV",
		"nav.projects": "Projetos",
		"nav.blog":     "Blog",
		"nav.links":    "Links",
		"nav.language": "Idioma",

		"footer.madeWith":   "Feito com",
		"footer.by":         "por",
		"footer.navigation": "Navegação",
		"footer.connect":    "Conecte-se",
		"footer.builtWith":  "Feito com Go, Gin & goldmark",

		"hero.greeting":     "Olá, Sou Pedro Felipe",
		"hero.title":        "Engenheiro Backend & Entusiasta DevOps",
		"hero.description":  "Construindo sistemas escaláveis e manteníveis focados em eficiência e confiabilidade",
		"hero.cta":          "Explorar meu trabalho",
		"hero.ctaSecondary": "Ler meu CV",

		"about.title":       "Sobre Mim",
		"about.intro":       "Sou um engenheiro backend apaixonado por projetar sistemas robustos e escaláveis.",
		"about.work":        "Experiência Profissional",
		"about.education":   "Educação",
		"about.contact":     "Vamos Conversar",
		"about.contactDesc": "Fique à vontade para entrar em contato por qualquer um desses canais. Estou sempre aberto a discutir novos projetos, desafios técnicos ou oportunidades de colaboração.",
		"about.present":     "Presente",

		"projects.title":     "Projetos em Destaque",
		"projects.subtitle":  "Confira meu trabalho mais recente",
		"projects.code":      "Código",
		"projects.demo":      "Demo",
		"projects.filter":    "Filtrar por tecnologia",
		"projects.clear":     "Limpar tudo",
		"projects.noResults": "Nenhum projeto encontrado com essas tecnologias.",

		"project.oportunne":     "Plataforma web conectando estudantes, professores e empresas para centralizar oportunidades para profissionais em início de carreira.",
		"project.saudePontual":  "Sistema de agendamento de consultas médicas com arquitetura backend robusta, autenticação JWT e containerização com Docker.",
		"project.apiFinanceiro": "API de gestão de transações financeiras construída com TypeScript e Fastify, com banco SQLite e Knex.",
		"project.notesApi":      "API REST simples para gestão de notas com operações CRUD, validação com Zod e Prisma ORM.",
		"project.planIt":        "Projeto acadêmico construído com metodologia Scrum: uma aplicação de calendário intuitiva para gestão de eventos.",

		"blog.title":       "Blog",
		"blog.subtitle":    "Insights sobre engenharia backend, design de sistemas e DevOps",
		"blog.readMore":    "Ler mais",
		"blog.back":        "Voltar",
		"blog.share":       "Compartilhar",
		"blog.copyLink":    "Copiar link",
		"blog.linkCopied":  "Link copiado!",
		"blog.noPosts":     "Nenhum post ainda",
		"blog.noPostsDesc": "Volte em breve para novos conteúdos.",
		"blog.page":        "Página",
		"blog.of":          "de",
		"blog.previous":    "Anterior",
		"blog.next":        "Próximo",
		"blog.allTags":     "Todas as tags",
		"blog.onThisPage":  "Nesta página",
		"blog.readingTime": "min de leitura",

		"links.title":       "Links",
		"links.description": "Me encontre pela web",

		"contact.title":   "Fale Comigo",
		"contact.name":    "Nome completo",
		"contact.email":   "Email",
		"contact.message": "Mensagem",
		"contact.send":    "Enviar",
		"contact.success": "Obrigado pela sua mensagem! Retornarei em breve.",
		"contact.error":   "Desculpe, houve um erro ao enviar sua mensagem. Tente novamente mais tarde.",

		"notFound.title":       "Página Não Encontrada",
		"notFound.description": "A página que você procura não existe ou foi movida.",
		"notFound.cta":         "Voltar para o Início",
	},
}
